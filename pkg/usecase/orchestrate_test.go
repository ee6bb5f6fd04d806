package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/domain/mock"
	"github.com/secmon-lab/issueflow/pkg/domain/model"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
	"github.com/secmon-lab/issueflow/pkg/infra"
	"github.com/secmon-lab/issueflow/pkg/usecase"
)

func readyIssues() []*model.Issue {
	return []*model.Issue{
		{Number: 1, Title: "Low ready", Labels: []string{"low", "ready-for-development"}, State: "open", UpdatedAt: testNow},
		{Number: 2, Title: "Critical ready", Labels: []string{"bug", "ready-for-development"}, State: "open", UpdatedAt: testNow},
		{Number: 3, Title: "Started", Labels: []string{"bug", "ready-for-development", "in-progress"}, State: "open", UpdatedAt: testNow},
		{Number: 4, Title: "Not ready", Labels: []string{"bug"}, State: "open", UpdatedAt: testNow},
		{Number: 5, Title: "Medium first", Labels: []string{"good first issue"}, State: "open", UpdatedAt: testNow},
		{Number: 6, Title: "High ready", Labels: []string{"high", "ready-for-development"}, State: "open", UpdatedAt: testNow},
		{Number: 7, Title: "Branch only", Labels: []string{"ready-for-development", "feature-branch-created"}, State: "open", UpdatedAt: testNow},
	}
}

func TestAutoStart(t *testing.T) {
	t.Run("starts ready issues in priority order up to max", func(t *testing.T) {
		fx := newFixture(t, readyIssues())

		result, err := fx.uc.AutoStart(newTestContext(), 3)
		gt.NoError(t, err)
		gt.V(t, result.Selected).Equal([]types.IssueNumber{2, 6, 5})
		gt.V(t, result.Started).Equal(map[types.IssueNumber]string{
			2: "feature/issue-2-critical-ready",
			6: "feature/issue-6-high-ready",
			5: "feature/issue-5-medium-first",
		})
		gt.A(t, result.Failed).Length(0)
		gt.A(t, result.Skipped).Length(0)

		gt.False(t, fx.issues[1].HasLabel("in-progress"))
		gt.False(t, fx.issues[4].HasLabel("in-progress"))
	})

	t.Run("default max is three", func(t *testing.T) {
		fx := newFixture(t, readyIssues())

		result, err := fx.uc.AutoStart(newTestContext(), 0)
		gt.NoError(t, err)
		gt.A(t, result.Selected).Length(3)
	})

	t.Run("fewer ready issues than max", func(t *testing.T) {
		fx := newFixture(t, readyIssues())

		result, err := fx.uc.AutoStart(newTestContext(), 10)
		gt.NoError(t, err)
		gt.V(t, result.Selected).Equal([]types.IssueNumber{2, 6, 5, 1})
	})

	t.Run("failure of one issue does not stop the batch", func(t *testing.T) {
		fx := newFixture(t, readyIssues())
		createBranch := fx.vcs.CreateBranchFunc
		fx.vcs.CreateBranchFunc = func(ctx context.Context, name types.BranchName, from types.CommitSHA) error {
			if name == "feature/issue-6-high-ready" {
				return errors.New("permission denied")
			}
			return createBranch(ctx, name, from)
		}

		result, err := fx.uc.AutoStart(newTestContext(), 3)
		gt.NoError(t, err)
		gt.V(t, result.Failed).Equal([]types.IssueNumber{6})
		gt.V(t, len(result.Started)).Equal(2)
		gt.True(t, fx.issues[5].HasLabel("in-progress"))
		gt.False(t, fx.issues[6].HasLabel("in-progress"))
	})

	t.Run("existing branch is reported as skipped", func(t *testing.T) {
		fx := newFixture(t, readyIssues())
		fx.branches["feature/issue-2-critical-ready"] = "abc"

		result, err := fx.uc.AutoStart(newTestContext(), 3)
		gt.NoError(t, err)
		gt.V(t, result.Skipped).Equal([]types.IssueNumber{2})
		gt.A(t, result.Failed).Length(0)
		gt.V(t, len(result.Started)).Equal(2)
	})

	t.Run("listing failure aborts", func(t *testing.T) {
		fx := newFixture(t, readyIssues())
		fx.tracker.ListIssuesFunc = func(ctx context.Context, state types.IssueState) ([]*model.Issue, error) {
			return nil, errors.New("rate limited")
		}

		_, err := fx.uc.AutoStart(newTestContext(), 3)
		gt.Error(t, err)
		gt.A(t, fx.vcs.CreateBranchCalls()).Length(0)
	})
}

func TestReport(t *testing.T) {
	issues := []*model.Issue{
		{Number: 1, Title: "Crash", Labels: []string{"bug", "in-progress"}, Assignee: "alice", State: "open", UpdatedAt: testNow},
		{Number: 2, Title: "Docs", State: "open", UpdatedAt: testNow.Add(-30 * 24 * time.Hour), Assignee: "bob"},
		{Number: 3, Title: "Polish", Labels: []string{"nice-to-have"}, State: "open", UpdatedAt: testNow, Assignee: "carol"},
		{Number: 4, Title: "Urgent fix", Body: "urgent", State: "open", UpdatedAt: testNow},
	}
	fx := newFixture(t, issues)

	report, err := fx.uc.Report(newTestContext(), 2)
	gt.NoError(t, err)

	gt.V(t, report.Repo).Equal("example-org/example-app")
	gt.True(t, report.Timestamp.Equal(testNow))
	gt.V(t, report.ID).NotEqual(types.RequestID(""))
	gt.V(t, report.TotalIssues).Equal(4)
	gt.V(t, report.ByPriority).Equal(model.PriorityCounts{Critical: 1, High: 1, Medium: 1, Low: 1})
	gt.V(t, report.NeedsAttention).Equal(1)
	gt.V(t, report.InProgress).Equal(1)
	gt.V(t, report.EstimatedWorkload).Equal(2 + 6 + 4 + 8)

	gt.A(t, report.TopPriority).Length(2)
	gt.V(t, report.TopPriority[0].Number).Equal(1)
	gt.V(t, report.TopPriority[0].Assignee).Equal("alice")
	gt.V(t, report.TopPriority[0].CurrentStep).Equal("in-progress")
	gt.V(t, report.TopPriority[1].Number).Equal(4)
	gt.V(t, report.TopPriority[1].Assignee).Equal("unassigned")

	t.Run("counts add up", func(t *testing.T) {
		c := report.ByPriority
		gt.V(t, c.Critical+c.High+c.Medium+c.Low).Equal(report.TotalIssues)
	})
}

func TestExportReport(t *testing.T) {
	report := &model.WorkflowReport{
		ID:          "report-1",
		Repo:        "example-org/example-app",
		Timestamp:   testNow,
		TotalIssues: 1,
		TopPriority: []*model.TopIssue{{Number: 1, Title: "Crash", Priority: types.PriorityCritical}},
	}

	t.Run("creates table and inserts report", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				gt.True(t, len(md.Schema) > 0)
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				record := data.(*model.WorkflowReportRecord)
				gt.V(t, record.ID).Equal(types.RequestID("report-1"))
				gt.V(t, record.Timestamp).Equal(testNow.UnixMicro())
				return nil
			},
		}
		storage := &mock.ObjectStorageMock{
			PutFunc: func(ctx context.Context, object string, contentType string, data []byte) error {
				gt.V(t, object).Equal("reports/example-org/example-app/20240601T120000Z_report-1.json")
				gt.V(t, contentType).Equal("application/json")

				var got model.WorkflowReport
				gt.NoError(t, json.Unmarshal(data, &got))
				gt.V(t, got.TotalIssues).Equal(1)
				return nil
			},
		}

		uc := usecase.New(infra.New(infra.WithBigQuery(mockBQ), infra.WithObjectStorage(storage)))
		gt.NoError(t, uc.ExportReport(newTestContext(), report))
		gt.A(t, mockBQ.CreateTableCalls()).Length(1)
		gt.A(t, mockBQ.InsertCalls()).Length(1)
		gt.A(t, storage.PutCalls()).Length(1)
	})

	t.Run("nothing configured", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.NoError(t, uc.ExportReport(newTestContext(), report))
	})

	t.Run("insert failure is returned", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				return errors.New("quota exceeded")
			},
		}
		uc := usecase.New(infra.New(infra.WithBigQuery(mockBQ)))
		gt.Error(t, uc.ExportReport(newTestContext(), report))
	})
}

func TestCreateOrUpdateBigQueryTable(t *testing.T) {
	report := &model.WorkflowReport{ID: "x", Timestamp: testNow}

	t.Run("same schema is not updated", func(t *testing.T) {
		schema := gt.R1(bqs.Infer(report)).NoError(t)
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{Schema: schema}, nil
			},
		}

		got, err := usecase.CreateOrUpdateBigQueryTableForTest(context.Background(), mockBQ, report)
		gt.NoError(t, err)
		gt.V(t, len(got)).Equal(len(schema))
		gt.A(t, mockBQ.UpdateTableCalls()).Length(0)
		gt.A(t, mockBQ.CreateTableCalls()).Length(0)
	})

	t.Run("missing column is merged", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return &bigquery.TableMetadata{
					Schema: bigquery.Schema{{Name: "legacy_column", Type: bigquery.StringFieldType}},
					ETag:   "etag-1",
				}, nil
			},
			UpdateTableFunc: func(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
				gt.V(t, eTag).Equal("etag-1")
				gt.True(t, len(md.Schema) > 1)
				return nil
			},
		}

		_, err := usecase.CreateOrUpdateBigQueryTableForTest(context.Background(), mockBQ, report)
		gt.NoError(t, err)
		gt.A(t, mockBQ.UpdateTableCalls()).Length(1)
	})
}

func TestReportObjectName(t *testing.T) {
	report := &model.WorkflowReport{ID: "abc", Timestamp: testNow}
	gt.V(t, usecase.ReportObjectNameForTest(report)).Equal("reports/default/20240601T120000Z_abc.json")
}
