package handlers_test

import (
	"net/http"
	"testing"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

func TestProfileUpsertKeepsOnePerUser(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")

	rec := doJSON(t, h, http.MethodPut, "/api/v1/profile", alice.Token, map[string]any{
		"industry":          "software",
		"yearsOfExperience": 2,
		"skills":            []string{"go"},
	})
	wantStatus(t, rec, http.StatusOK)
	var first models.SkillsProfile
	decode(t, rec, &first)

	rec = doJSON(t, h, http.MethodPut, "/api/v1/profile", alice.Token, map[string]any{
		"industry":          "fintech",
		"yearsOfExperience": 3,
		"skills":            []string{"go", "sql"},
	})
	wantStatus(t, rec, http.StatusOK)
	var second models.SkillsProfile
	decode(t, rec, &second)

	if second.ID != first.ID {
		t.Fatalf("upsert created a second profile: %q vs %q", second.ID, first.ID)
	}
	if second.Industry != "fintech" || len(second.Skills) != 2 {
		t.Fatalf("profile not replaced: %+v", second)
	}
}

func TestProfileGetProbe(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/profile", "", nil)
	wantStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "null\n" {
		t.Fatalf("anonymous profile = %q, want null", body)
	}

	alice := register(t, h, "Alice", "alice@example.com")
	rec = doJSON(t, h, http.MethodGet, "/api/v1/profile", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "null\n" {
		t.Fatalf("missing profile = %q, want null", body)
	}
}

func TestProfilesByIndustry(t *testing.T) {
	h, _ := newTestServer(t)
	alice := register(t, h, "Alice", "alice@example.com")
	bob := register(t, h, "Bob", "bob@example.com")

	for token, industry := range map[string]string{alice.Token: "software", bob.Token: "finance"} {
		rec := doJSON(t, h, http.MethodPut, "/api/v1/profile", token, map[string]any{
			"industry": industry,
		})
		wantStatus(t, rec, http.StatusOK)
	}

	rec := doJSON(t, h, http.MethodGet, "/api/v1/profiles/industry/software", alice.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	var profiles []models.SkillsProfile
	decode(t, rec, &profiles)
	if len(profiles) != 1 || profiles[0].Industry != "software" {
		t.Fatalf("unexpected listing: %+v", profiles)
	}
}
