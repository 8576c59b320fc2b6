package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func createAntibody(t *testing.T, env *testEnv, kind string, body gin.H) int64 {
	t.Helper()
	rr := env.doJSON(t, http.MethodPost, "/api/antibodies/"+kind, body)
	if rr.Code != http.StatusOK {
		t.Fatalf("create %s antibody: status=%d body=%s", kind, rr.Code, rr.Body.String())
	}
	var out struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	decodeBody(t, rr, &out)
	if !out.Success || out.ID == 0 {
		t.Fatalf("create %s antibody: %+v", kind, out)
	}
	return out.ID
}

func TestPrimaryAntibodyCRUD(t *testing.T) {
	env := testRouter(t)

	rr := env.doJSON(t, http.MethodPost, "/api/antibodies/primary", gin.H{"host": "Rabbit"})
	if rr.Code != http.StatusBadRequest || errorMessage(t, rr) != "Antibody name is required" {
		t.Fatalf("missing name: status=%d body=%s", rr.Code, rr.Body.String())
	}

	id := createAntibody(t, env, "primary", gin.H{
		"name": "Anti-GFAP", "host": "Rabbit", "clonality": "polyclonal", "dilution": "1:500",
	})

	var got struct {
		Name     string `json:"name"`
		Host     string `json:"host"`
		Dilution string `json:"dilution"`
	}
	rr = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/antibodies/primary/%d", id), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: status=%d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &got)
	if got.Name != "Anti-GFAP" || got.Host != "Rabbit" || got.Dilution != "1:500" {
		t.Fatalf("get: %+v", got)
	}

	rr = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/antibodies/primary/%d", id), gin.H{
		"name": "Anti-GFAP", "host": "Rabbit", "dilution": "1:1000",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: status=%d body=%s", rr.Code, rr.Body.String())
	}
	rr = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/antibodies/primary/%d", id), nil)
	decodeBody(t, rr, &got)
	if got.Dilution != "1:1000" {
		t.Fatalf("after update: %+v", got)
	}

	var list []struct {
		Name string `json:"name"`
	}
	rr = env.doJSON(t, http.MethodGet, "/api/antibodies/primary", nil)
	decodeBody(t, rr, &list)
	if len(list) != 1 {
		t.Fatalf("list: %+v", list)
	}

	rr = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/antibodies/primary/%d", id), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: status=%d body=%s", rr.Code, rr.Body.String())
	}
	rr = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/antibodies/primary/%d", id), nil)
	if rr.Code != http.StatusNotFound || errorMessage(t, rr) != "Antibody not found" {
		t.Fatalf("get deleted: status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSecondaryAntibodyCRUD(t *testing.T) {
	env := testRouter(t)

	id := createAntibody(t, env, "secondary", gin.H{
		"name": "Goat anti-Rabbit 488", "host": "Goat", "target_species": "Rabbit", "conjugate": "Alexa 488",
	})

	var got struct {
		Name          string `json:"name"`
		TargetSpecies string `json:"target_species"`
		Conjugate     string `json:"conjugate"`
	}
	rr := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/antibodies/secondary/%d", id), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: status=%d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &got)
	if got.TargetSpecies != "Rabbit" || got.Conjugate != "Alexa 488" {
		t.Fatalf("get: %+v", got)
	}

	rr = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/antibodies/secondary/%d", id), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: status=%d body=%s", rr.Code, rr.Body.String())
	}
	rr = env.doJSON(t, http.MethodGet, "/api/antibodies/secondary", nil)
	if body := rr.Body.String(); body != "[]" {
		t.Fatalf("list after delete should render [], got %s", body)
	}
}

// Matching pairs a primary's host species against secondary target species,
// ignoring case, so free-form entry still lines up.
func TestAntibodyMatching(t *testing.T) {
	env := testRouter(t)

	primaryID := createAntibody(t, env, "primary", gin.H{"name": "Anti-GFAP", "host": "Rabbit"})
	createAntibody(t, env, "secondary", gin.H{
		"name": "Goat anti-Rabbit 488", "host": "Goat", "target_species": "rabbit",
	})
	createAntibody(t, env, "secondary", gin.H{
		"name": "Donkey anti-Mouse 594", "host": "Donkey", "target_species": "Mouse",
	})

	var matches []struct {
		Name string `json:"name"`
	}
	rr := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/antibodies/match/%d", primaryID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("match: status=%d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &matches)
	if len(matches) != 1 || matches[0].Name != "Goat anti-Rabbit 488" {
		t.Fatalf("matches: %+v", matches)
	}

	rr = env.doJSON(t, http.MethodGet, "/api/antibodies/match/999", nil)
	if rr.Code != http.StatusNotFound || errorMessage(t, rr) != "Antibody not found" {
		t.Fatalf("missing primary: status=%d body=%s", rr.Code, rr.Body.String())
	}
}
