package request

// Tools are created via multipart form so an image can ride along.
type CreateToolRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
}
