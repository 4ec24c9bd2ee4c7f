package mail

import "time"

const (
	DefaultGraphBaseURL = "https://graph.microsoft.com"
	DefaultSendTimeout  = 30 * time.Second

	sendMailPath = "/v1.0/me/sendMail"
	// expirySkew treats tokens about to expire as already expired.
	expirySkew = time.Minute
)

// Message is one HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Token is a delegated send capability for one mailbox.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid reports whether t can still be used at now.
func (t Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Add(expirySkew).Before(t.ExpiresAt)
}

// Grant is what the user hands over after signing in interactively.
type Grant struct {
	AccessToken string
	ExpiresIn   time.Duration
}

// GraphConfig configures the Microsoft Graph sender.
type GraphConfig struct {
	BaseURL string
	Timeout time.Duration
}

type graphRecipient struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphBody        `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type sendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}
