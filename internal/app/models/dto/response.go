package dto

// APIResponse is the envelope every endpoint returns:
// status code, success flag, human-readable message and the payload (the
// persisted record on success, null on failure).
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"News retrieved successfully"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(status int, message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a failure envelope. Data is always null.
func NewErrorResponse(status int, message string) APIResponse {
	return APIResponse{
		Status:  status,
		Success: false,
		Message: message,
		Data:    nil,
	}
}

// PaginationInfo describes one page of a paginated listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"itemsPerPage" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}
