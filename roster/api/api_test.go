package api

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rollbook/rollbook/auth"
	"github.com/rollbook/rollbook/flatfile"
	"github.com/rollbook/rollbook/roster"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
)

func newHandler(t *testing.T, tokens auth.TokenStore) http.Handler {
	t.Helper()
	mem := flatfile.InMemoryStorage()
	mem.WriteFile("students.csv", []byte("name,school\nbob,LBKE\nana,UCL"))
	handler, err := AsHandler(roster.Open("students.csv", mem), tokens)
	if err != nil {
		t.Fatal(err)
	}
	return handler
}

func bodyContains(needle string) func(*http.Response, *http.Request) error {
	return func(res *http.Response, _ *http.Request) error {
		defer res.Body.Close()
		buf, err := ioutil.ReadAll(res.Body)
		if err != nil {
			return err
		}
		if !strings.Contains(string(buf), needle) {
			return fmt.Errorf("body does not contain %q", needle)
		}
		return nil
	}
}

func TestListJSON(t *testing.T) {
	handler := newHandler(t, nil)
	apitest.Handler(handler).
		Get("/api/students").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 2)).
		Assert(jsonpath.Equal(`$[0].name`, "bob")).
		Assert(jsonpath.Equal(`$[1].school`, "UCL")).
		End()
}

func TestCreateJSON(t *testing.T) {
	handler := newHandler(t, nil)
	apitest.Handler(handler).
		Post("/api/students/create").
		JSON(`{"name":"zoe","school":"MIT"}`).
		Expect(t).
		Status(http.StatusOK).
		Body(`ok`).
		End()
	apitest.Handler(handler).
		Get("/api/students").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 3)).
		Assert(jsonpath.Equal(`$[2].name`, "zoe")).
		End()
}

func TestUpdateJSONAppends(t *testing.T) {
	// the flat file has no rewrite-in-place, updates land as a new row
	handler := newHandler(t, nil)
	apitest.Handler(handler).
		Post("/api/students/0").
		JSON(`{"name":"bob","school":"MIT"}`).
		Expect(t).
		Status(http.StatusOK).
		Body(`ok`).
		End()
	apitest.Handler(handler).
		Get("/api/students").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 3)).
		Assert(jsonpath.Equal(`$[2].school`, "MIT")).
		End()
}

func TestPages(t *testing.T) {
	handler := newHandler(t, nil)
	apitest.Handler(handler).
		Get("/").
		Expect(t).
		Status(http.StatusOK).
		End()
	apitest.Handler(handler).
		Get("/students").
		Expect(t).
		Status(http.StatusOK).
		Assert(bodyContains("ana")).
		End()
	apitest.Handler(handler).
		Get("/students/1").
		Expect(t).
		Status(http.StatusOK).
		Assert(bodyContains("UCL")).
		End()
	apitest.Handler(handler).
		Get("/students/99").
		Expect(t).
		Status(http.StatusNotFound).
		End()
	apitest.Handler(handler).
		Get("/students/create").
		Expect(t).
		Status(http.StatusOK).
		Assert(bodyContains("form")).
		End()
}

func TestCreateForm(t *testing.T) {
	handler := newHandler(t, nil)
	apitest.Handler(handler).
		Post("/students/create").
		FormData("name", "zoe").
		FormData("school", "MIT").
		Expect(t).
		Status(http.StatusSeeOther).
		Header("Location", "/students/create?created=1").
		End()
	apitest.Handler(handler).
		Get("/api/students").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$[2].name`, "zoe")).
		End()
}

func TestLogin(t *testing.T) {
	tokens := auth.InMemoryTokenStore(time.Minute)
	handler := newHandler(t, tokens)
	apitest.Handler(handler).
		Post("/api/login").
		Expect(t).
		Status(http.StatusOK).
		Body(`OK`).
		Cookies(apitest.NewCookie("auth-token").Value(SessionToken)).
		End()
	found, err := tokens.Lookup(context.Background(), SessionToken)
	if err != nil {
		t.Fatal(err)
	} else if !found {
		t.Fatal("login should remember the issued token")
	}
}

func TestStaticAssets(t *testing.T) {
	handler := newHandler(t, nil)
	buf, err := assets.ReadFile("public/style.css")
	if err != nil {
		t.Fatal(err)
	}
	apitest.Handler(handler).
		Get("/public/style.css").
		Expect(t).
		Status(http.StatusOK).
		HeaderPresent("ETag").
		End()
	apitest.Handler(handler).
		Get("/public/style.css").
		Header("If-None-Match", etagFor(buf)).
		Expect(t).
		Status(http.StatusNotModified).
		End()
	apitest.Handler(handler).
		Get("/public/nope.css").
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
