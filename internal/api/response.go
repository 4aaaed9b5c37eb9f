package api

import "github.com/stockboard/stockboard/internal/apperrors"

// ListResponse wraps collection responses with pagination metadata.
// @Description Collection response with pagination
type ListResponse struct {
	Data       any  `json:"data"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

// ErrorResponse represents all API error responses.
// @Description Standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type    string                 `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Param   string                 `json:"param,omitempty"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

func NewListResponse(data any, page, pageSize, totalItems, totalPages int) *ListResponse {
	return &ListResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

func NewErrorResponse(httpStatusCode int, err error, message, param string) *ErrorResponse {
	errorType := "api_error"
	if httpStatusCode >= 400 && httpStatusCode < 500 {
		errorType = "invalid_request_error"
	}

	errorCode := "unknown_error"
	if err != nil {
		errorCode = err.Error()
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    errorType,
			Code:    errorCode,
			Message: message,
			Param:   param,
		},
	}
}
