package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Severity maps to the alert style of the rendered message
type Severity string

const (
	Success Severity = "success"
	Danger  Severity = "danger"
	Info    Severity = "info"
)

const cookieName = "flash"

type Message struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// Add queues a message for the next rendered page. Messages already queued on
// this request are kept.
func Add(w http.ResponseWriter, r *http.Request, severity Severity, text string) {
	messages := read(r)
	messages = append(messages, Message{Severity: severity, Text: text})

	payload, err := json.Marshal(messages)
	if err != nil {
		return
	}

	cookie := &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	// later Add calls on the same request must see this message
	setRequestCookie(r, cookie)
}

// Pop returns the queued messages and clears them, so each is shown once
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	messages := read(r)
	if len(messages) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	setRequestCookie(r, nil)
	return messages
}

func read(r *http.Request) []Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var messages []Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	return messages
}

// setRequestCookie replaces the flash cookie on the incoming request
func setRequestCookie(r *http.Request, cookie *http.Cookie) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, c := range cookies {
		if c.Name != cookieName {
			r.AddCookie(c)
		}
	}
	if cookie != nil {
		r.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
}
