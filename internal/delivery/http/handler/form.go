package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// pathID reads the {id} route variable. Routes only match digits, so a failure
// here means the value does not fit in an int.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func formString(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// formInt yields 0 for a missing or malformed value, which the validator then rejects
func formInt(r *http.Request, key string) int {
	value, err := strconv.Atoi(formString(r, key))
	if err != nil {
		return 0
	}
	return value
}

// formBool follows checkbox semantics: ticked means present
func formBool(r *http.Request, key string) bool {
	return r.PostForm.Has(key)
}
