package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/interfaces"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/utils/errutil"
	"github.com/secmon-lab/issueflow/pkg/utils/logging"
)

const (
	DefaultAutoStartMax = 3
	DefaultReportTopN   = 5
)

// PrioritizedIssues fetches open issues and runs the prioritizer over them
func (x *UseCase) PrioritizedIssues(ctx context.Context) ([]*model.AnnotatedIssue, error) {
	issues, err := x.clients.IssueTracker().ListIssues(ctx, types.IssueStateOpen)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list open issues")
	}
	return prioritize(logging.CtxTime(ctx), x.policy.StaleDays, issues), nil
}

// AutoStart starts the workflow of up to max ready issues, in priority order. An issue is
// ready when it is not started yet and carries a readiness label. Failures are reported per
// issue and do not stop the batch. max <= 0 means DefaultAutoStartMax.
func (x *UseCase) AutoStart(ctx context.Context, max int) (*model.AutoStartResult, error) {
	if max <= 0 {
		max = DefaultAutoStartMax
	}

	prioritized, err := x.PrioritizedIssues(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.AutoStartResult{
		Selected: []types.IssueNumber{},
		Started:  map[types.IssueNumber]string{},
	}

	var ready []*model.AnnotatedIssue
	for _, issue := range prioritized {
		if issue.WorkflowStarted() || !issue.HasAnyLabel(x.policy.ReadinessLabels...) {
			continue
		}
		ready = append(ready, issue)
		if len(ready) >= max {
			break
		}
	}

	logger := logging.From(ctx)
	logger.Info("auto-starting workflow", "count", len(ready))

	for _, issue := range ready {
		result.Selected = append(result.Selected, issue.Number)

		branch, err := x.StartWorkflow(ctx, issue.Issue)
		switch {
		case err == nil:
			result.Started[issue.Number] = string(branch)
			logger.Info("workflow started", "issue", issue.Number, "branch", branch)

		case errutil.IsAlreadyStarted(err):
			result.Skipped = append(result.Skipped, issue.Number)
			logger.Info("already started", "issue", issue.Number, "error", err)

		default:
			result.Failed = append(result.Failed, issue.Number)
			errutil.HandleError(ctx, "failed to start workflow", goerr.Wrap(err, "auto start failed", goerr.V("issue", issue.Number)))
		}
	}

	return result, nil
}

// Report builds the workflow report of open issues. topN <= 0 means DefaultReportTopN.
func (x *UseCase) Report(ctx context.Context, topN int) (*model.WorkflowReport, error) {
	if topN <= 0 {
		topN = DefaultReportTopN
	}

	prioritized, err := x.PrioritizedIssues(ctx)
	if err != nil {
		return nil, err
	}

	report := model.NewWorkflowReport(logging.CtxTime(ctx), prioritized, topN)
	report.ID = types.NewRequestID()
	report.Repo = x.repoName()

	return report, nil
}

// ExportReport stores the report to BigQuery and object storage when they are configured
func (x *UseCase) ExportReport(ctx context.Context, report *model.WorkflowReport) error {
	if bq := x.clients.BigQuery(); bq != nil {
		schema, err := createOrUpdateBigQueryTable(ctx, bq, report)
		if err != nil {
			return err
		}
		if err := bq.Insert(ctx, schema, model.NewWorkflowReportRecord(report)); err != nil {
			return goerr.Wrap(err, "failed to insert report to BigQuery", goerr.V("id", report.ID))
		}
		logging.From(ctx).Info("report exported to BigQuery", "id", report.ID)
	}

	if storage := x.clients.ObjectStorage(); storage != nil {
		raw, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return goerr.Wrap(err, "failed to marshal report")
		}
		object := reportObjectName(report)
		if err := storage.Put(ctx, object, "application/json", raw); err != nil {
			return goerr.Wrap(err, "failed to archive report", goerr.V("object", object))
		}
		logging.From(ctx).Info("report archived", "object", object)
	}

	return nil
}

func reportObjectName(report *model.WorkflowReport) string {
	repo := report.Repo
	if repo == "" {
		repo = "default"
	}
	return fmt.Sprintf("reports/%s/%s_%s.json", repo, report.Timestamp.Format("20060102T150405Z"), report.ID)
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, data any) (bigquery.Schema, error) {
	schema, err := bqs.Infer(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer report schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
