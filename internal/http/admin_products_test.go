package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAdminCreateProduct(t *testing.T) {
	app := newTestApp(t)
	tok := csrfToken(t, app)

	resp := postForm(t, app, "/admin/products",
		"name=Kefir&description=Fermented+milk+drink&category=milk&price=4.49", tok, "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("create expected redirect, got %d", resp.StatusCode)
	}

	listResp, err := app.Test(httptest.NewRequest("GET", "/admin/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(listResp.Body)
	if !strings.Contains(string(body), "Kefir") {
		t.Fatalf("created product missing from admin list; body=%s", body)
	}
}

func TestAdminCreateRejectsBadInput(t *testing.T) {
	app := newTestApp(t)
	tok := csrfToken(t, app)

	cases := []struct {
		name string
		form string
	}{
		{"missing fields", "name=Kefir&price=4.49"},
		{"zero price", "name=Kefir&description=x&category=milk&price=0"},
		{"discount above price", "name=Kefir&description=x&category=milk&price=4.49&discountPrice=9.99"},
		{"bad percent", "name=Kefir&description=x&category=milk&price=4.49&discountPercentage=150"},
	}
	for _, tc := range cases {
		resp := postForm(t, app, "/admin/products", tc.form, tok, "")
		// soft rejection: redirect back with a flash message, no mutation
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("%s: expected redirect, got %d", tc.name, resp.StatusCode)
		}
		listResp, err := app.Test(httptest.NewRequest("GET", "/admin/products", nil))
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(listResp.Body)
		if strings.Contains(string(body), "Kefir") {
			t.Fatalf("%s: rejected product must not be stored", tc.name)
		}
	}
}

func TestAdminDiscountAbovePriceKeepsCatalogSize(t *testing.T) {
	app := newTestApp(t)
	tok := csrfToken(t, app)

	resp := postForm(t, app, "/admin/products",
		"name=Bad+Butter&description=x&category=butter&price=2.00&discountPrice=3.00", tok, "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	listResp, _ := app.Test(httptest.NewRequest("GET", "/admin/products", nil))
	body, _ := io.ReadAll(listResp.Body)
	if strings.Contains(string(body), "Bad Butter") {
		t.Fatal("invalid discount price must be rejected")
	}
}
