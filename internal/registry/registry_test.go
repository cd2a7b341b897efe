package registry_test

import (
	"testing"

	"github.com/bremenlabs/agentops/internal/registry"
	"github.com/bremenlabs/agentops/internal/schema"
)

func TestNew_CatalogIsValid(t *testing.T) {
	if _, err := registry.New(); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestRegistry_Get(t *testing.T) {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	agent, ok := reg.Get("business-intel")
	if !ok {
		t.Fatal("Get(business-intel) ok = false, want true")
	}
	if agent.Name != "Business Monitor" {
		t.Errorf("agent.Name = %q, want %q", agent.Name, "Business Monitor")
	}

	if _, ok := reg.Get("unknown-agent"); ok {
		t.Error("Get(unknown-agent) ok = true, want false")
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	career := reg.ByCategory(schema.CategoryCareer)
	wantIDs := []string{"career-scout", "linkedin-researcher"}
	if len(career) != len(wantIDs) {
		t.Fatalf("ByCategory(career) returned %d agents, want %d", len(career), len(wantIDs))
	}
	for i, id := range wantIDs {
		if career[i].ID != id {
			t.Errorf("career[%d].ID = %q, want %q", i, career[i].ID, id)
		}
	}

	if got := reg.ByCategory(schema.CategoryLifestyle); len(got) != 0 {
		t.Errorf("ByCategory(lifestyle) returned %d agents, want 0", len(got))
	}
}

func TestRegistry_All_PreservesCatalogOrder(t *testing.T) {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantIDs := []string{"business-intel", "career-scout", "linkedin-researcher"}
	all := reg.All()
	if len(all) != len(wantIDs) {
		t.Fatalf("All() returned %d agents, want %d", len(all), len(wantIDs))
	}
	for i, id := range wantIDs {
		if all[i].ID != id {
			t.Errorf("all[%d].ID = %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestRegistry_Sections(t *testing.T) {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sections := reg.Sections()
	if len(sections) != 4 {
		t.Fatalf("Sections() returned %d sections, want 4", len(sections))
	}
	if sections[0].Key != registry.SharedKey {
		t.Errorf("sections[0].Key = %q, want %q", sections[0].Key, registry.SharedKey)
	}
	if sections[1].Key != "business-intel" {
		t.Errorf("sections[1].Key = %q, want business-intel", sections[1].Key)
	}
}

func TestRegistry_SectionFields(t *testing.T) {
	reg, err := registry.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	shared, ok := reg.SectionFields(registry.SharedKey)
	if !ok || len(shared) == 0 {
		t.Errorf("SectionFields(%s) = (%d fields, %v), want fields", registry.SharedKey, len(shared), ok)
	}

	agent, ok := reg.SectionFields("career-scout")
	if !ok || len(agent) == 0 {
		t.Errorf("SectionFields(career-scout) = (%d fields, %v), want fields", len(agent), ok)
	}

	if _, ok := reg.SectionFields("unknown"); ok {
		t.Error("SectionFields(unknown) ok = true, want false")
	}
}
