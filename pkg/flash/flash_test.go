package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"

	"go-clinic-management/pkg/flash"
)

func TestFlashIsShownOnce(t *testing.T) {
	c := qt.New(t)

	// request that stores the message
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ajouter_medecin", nil)
	flash.Add(rec, req, flash.Success, "Médecin ajouté avec succès")

	cookies := rec.Result().Cookies()
	c.Assert(cookies, qt.HasLen, 1)

	// next page consumes it
	next := httptest.NewRequest(http.MethodGet, "/medecins", nil)
	next.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	messages := flash.Pop(rec, next)
	c.Assert(messages, qt.DeepEquals, []flash.Message{
		{Severity: flash.Success, Text: "Médecin ajouté avec succès"},
	})

	cleared := rec.Result().Cookies()
	c.Assert(cleared, qt.HasLen, 1)
	c.Assert(cleared[0].MaxAge, qt.Equals, -1)

	// popping again on the same request yields nothing
	c.Assert(flash.Pop(httptest.NewRecorder(), next), qt.HasLen, 0)
}

func TestFlashAccumulatesWithinRequest(t *testing.T) {
	c := qt.New(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	flash.Add(rec, req, flash.Info, "first")
	flash.Add(rec, req, flash.Danger, "second")

	messages := flash.Pop(httptest.NewRecorder(), req)
	c.Assert(messages, qt.HasLen, 2)
	c.Assert(messages[1].Severity, qt.Equals, flash.Danger)
}

func TestFlashIgnoresGarbage(t *testing.T) {
	c := qt.New(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "%%%"})
	c.Assert(flash.Pop(httptest.NewRecorder(), req), qt.HasLen, 0)
}
