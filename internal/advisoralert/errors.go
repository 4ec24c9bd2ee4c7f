package advisoralert

import "errors"

var (
	ErrAdvisorNotFound         = errors.New("advisor not found")
	ErrNotAdvisor              = errors.New("user is not an advisor")
	ErrReauthorizationRequired = errors.New("mail authorization expired, sign in again to send alerts")
	ErrSendFailed              = errors.New("failed to send the alert digest")
	ErrInvalidFilter           = errors.New("invalid alert filter")
)
