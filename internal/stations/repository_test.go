package stations

import (
	"path/filepath"
	"testing"

	"github.com/TwistedSD/uk-fishing-map/internal/models"
)

func TestRepository_Nearest(t *testing.T) {
	repo := NewRepository([]models.TideStation{
		{ID: "0001", Name: "A", Latitude: 0, Longitude: 0},
		{ID: "0002", Name: "B", Latitude: 1, Longitude: 1},
	})

	st, ok := repo.Nearest(0.1, 0.1)
	if !ok {
		t.Fatal("Nearest() ok = false, want true")
	}
	if st.Name != "A" {
		t.Errorf("Nearest(0.1, 0.1) = %s, want A", st.Name)
	}

	st, ok = repo.Nearest(0.9, 0.9)
	if !ok || st.Name != "B" {
		t.Errorf("Nearest(0.9, 0.9) = %s (%v), want B", st.Name, ok)
	}
}

func TestRepository_Nearest_TieBreaksToFirst(t *testing.T) {
	// Equidistant candidates resolve to catalog order.
	repo := NewRepository([]models.TideStation{
		{ID: "1", Name: "first", Latitude: 0, Longitude: 1},
		{ID: "2", Name: "second", Latitude: 1, Longitude: 0},
	})

	st, ok := repo.Nearest(0, 0)
	if !ok || st.Name != "first" {
		t.Errorf("Nearest() on tie = %s (%v), want first", st.Name, ok)
	}
}

func TestRepository_Nearest_Empty(t *testing.T) {
	repo := NewRepository(nil)
	if _, ok := repo.Nearest(54.5, -2.3); ok {
		t.Error("Nearest() on empty catalog should return ok = false")
	}
	if !repo.Empty() {
		t.Error("Empty() = false for empty catalog")
	}
}

func TestCache_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stations.db")
	in := []models.TideStation{
		{ID: "0113", Name: "Craster", Latitude: 55.47, Longitude: -1.59},
		{ID: "0025", Name: "Whitby", Latitude: 54.49, Longitude: -0.61},
	}

	if err := SaveCache(dbPath, in); err != nil {
		t.Fatalf("SaveCache() error = %v", err)
	}

	out, err := LoadCache(dbPath)
	if err != nil {
		t.Fatalf("LoadCache() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("LoadCache() returned %d stations, want 2", len(out))
	}
	// Insertion order preserved.
	if out[0].ID != "0113" || out[1].ID != "0025" {
		t.Errorf("cache order = %s, %s; want 0113, 0025", out[0].ID, out[1].ID)
	}
	if out[0].Latitude != 55.47 || out[0].Longitude != -1.59 {
		t.Errorf("cached coordinates = %v, %v; want 55.47, -1.59", out[0].Latitude, out[0].Longitude)
	}
}

func TestCache_SaveReplacesPrevious(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stations.db")

	if err := SaveCache(dbPath, []models.TideStation{{ID: "1", Name: "old"}}); err != nil {
		t.Fatalf("first SaveCache() error = %v", err)
	}
	if err := SaveCache(dbPath, []models.TideStation{{ID: "2", Name: "new"}}); err != nil {
		t.Fatalf("second SaveCache() error = %v", err)
	}

	out, err := LoadCache(dbPath)
	if err != nil {
		t.Fatalf("LoadCache() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != "2" {
		t.Errorf("cache after replace = %+v, want only station 2", out)
	}
}

func TestLoadCache_Missing(t *testing.T) {
	if _, err := LoadCache(filepath.Join(t.TempDir(), "absent.db")); err == nil {
		t.Error("LoadCache() on a missing file should error")
	}
}
