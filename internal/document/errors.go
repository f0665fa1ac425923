package document

import "errors"

// Domain errors for document rendering
var (
	ErrUnknownKind     = errors.New("unknown document kind")
	ErrMissingSummary  = errors.New("render context has no summary")
	ErrWorkbookFailed  = errors.New("failed to build workbook")
	ErrWorkbookWrite   = errors.New("failed to write workbook")
	ErrLogoUnavailable = errors.New("logo file not available")
)
