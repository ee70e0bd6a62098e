package request

type CreateReportRequest struct {
	ToolID      int64  `form:"tool_id" binding:"required"`
	Description string `form:"description" binding:"required"`
}
