package usecase

// Export unexported functions for testing
var (
	RenderStartCommentForTest          = renderStartComment
	RenderOrphanCommentForTest         = renderOrphanComment
	ReportObjectNameForTest            = reportObjectName
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
)
