package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAttachmentTooLarge   = errors.New("attachment exceeds the size limit")
)
