package discord

import "time"

const (
	webhookPrefix = "https://discord.com/api/webhooks/"

	ColorInfo    = 3447003
	ColorSuccess = 3066993
	ColorWarning = 16776960
	ColorError   = 15158332

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "Advisor Alerts"
	UserAgent       = "advisor-alert-srv/1.0"
	ReportBugTitle  = "Advisor alert service error"
)
