package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func uploadLayoutPhoto(t *testing.T, env *testEnv, tempKey, section string) int64 {
	t.Helper()
	rr := env.doMultipart(t, "/api/layout/upload",
		map[string]string{"temp_key": tempKey, "section": section},
		"photo", "shelf.jpg", []byte("jpegdata"))
	if rr.Code != http.StatusOK {
		t.Fatalf("upload: status=%d body=%s", rr.Code, rr.Body.String())
	}
	var out struct {
		Success  bool   `json:"success"`
		LayoutID int64  `json:"layout_id"`
		Filename string `json:"filename"`
	}
	decodeBody(t, rr, &out)
	if !out.Success || out.LayoutID == 0 || out.Filename == "" {
		t.Fatalf("upload: %+v", out)
	}
	if _, err := os.Stat(filepath.Join(env.uploads, out.Filename)); err != nil {
		t.Fatalf("stored photo missing: %v", err)
	}
	return out.LayoutID
}

func TestLayoutUploadAndView(t *testing.T) {
	env := testRouter(t)

	layoutID := uploadLayoutPhoto(t, env, "4C", "door")

	rr := env.doJSON(t, http.MethodGet, "/api/layout/4C/door", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("view: status=%d body=%s", rr.Code, rr.Body.String())
	}
	var view struct {
		Layout struct {
			ID            int64  `json:"id"`
			TempKey       string `json:"temp_key"`
			Section       string `json:"section"`
			PhotoFilename string `json:"photo_filename"`
		} `json:"layout"`
		Regions   []any `json:"regions"`
		Occupancy []any `json:"occupancy"`
	}
	decodeBody(t, rr, &view)
	if view.Layout.ID != layoutID || view.Layout.TempKey != "4C" || view.Layout.Section != "door" {
		t.Fatalf("view layout: %+v", view.Layout)
	}
	if !strings.HasPrefix(view.Layout.PhotoFilename, "4C_door_") {
		t.Fatalf("photo filename: %q", view.Layout.PhotoFilename)
	}
	if view.Regions == nil || view.Occupancy == nil {
		t.Fatalf("regions/occupancy should be empty lists: %s", rr.Body.String())
	}

	// Re-uploading the same slot keeps the layout id.
	if again := uploadLayoutPhoto(t, env, "4C", "door"); again != layoutID {
		t.Fatalf("reupload created new layout: %d != %d", again, layoutID)
	}
}

func TestLayoutUploadValidation(t *testing.T) {
	env := testRouter(t)

	rr := env.doMultipart(t, "/api/layout/upload",
		map[string]string{"temp_key": "4C", "section": "door"}, "", "", nil)
	if rr.Code != http.StatusBadRequest || errorMessage(t, rr) != "No photo uploaded" {
		t.Fatalf("no photo: status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.doMultipart(t, "/api/layout/upload",
		map[string]string{"section": "door"},
		"photo", "shelf.jpg", []byte("jpegdata"))
	if rr.Code != http.StatusBadRequest || errorMessage(t, rr) != "Temperature and section are required" {
		t.Fatalf("missing temp: status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = env.doMultipart(t, "/api/layout/upload",
		map[string]string{"temp_key": "4C", "section": "door"},
		"photo", "virus.exe", []byte("xx"))
	if rr.Code != http.StatusBadRequest || errorMessage(t, rr) != "Invalid file type. Use JPG, PNG, or GIF" {
		t.Fatalf("bad type: status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLayoutViewMissingReturns404(t *testing.T) {
	env := testRouter(t)

	rr := env.doJSON(t, http.MethodGet, "/api/layout/4C/body", nil)
	if rr.Code != http.StatusNotFound || errorMessage(t, rr) != "Layout not found" {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRegionLifecycle(t *testing.T) {
	env := testRouter(t)

	layoutID := uploadLayoutPhoto(t, env, "-20C", "body")

	rr := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/layout/%d/region", layoutID), gin.H{
		"region_name": "Top shelf", "x": 10, "y": 20, "width": 100, "height": 50,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("create region: status=%d body=%s", rr.Code, rr.Body.String())
	}
	var created struct {
		Success  bool  `json:"success"`
		RegionID int64 `json:"region_id"`
	}
	decodeBody(t, rr, &created)
	if !created.Success || created.RegionID == 0 {
		t.Fatalf("create region: %+v", created)
	}

	rr = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/layout/%d/region", layoutID), gin.H{
		"region_name": "No coords",
	})
	if rr.Code != http.StatusBadRequest || errorMessage(t, rr) != "Missing required fields" {
		t.Fatalf("partial region: status=%d body=%s", rr.Code, rr.Body.String())
	}

	var regions []struct {
		ID         int64  `json:"id"`
		RegionName string `json:"region_name"`
		X          int    `json:"x"`
	}
	rr = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/layout/%d/regions", layoutID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("regions: status=%d body=%s", rr.Code, rr.Body.String())
	}
	decodeBody(t, rr, &regions)
	if len(regions) != 1 || regions[0].RegionName != "Top shelf" {
		t.Fatalf("regions: %+v", regions)
	}
	regionID := regions[0].ID

	rr = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/region/%d", regionID), gin.H{
		"region_name": "Bottom shelf", "x": 10, "y": 220, "width": 100, "height": 50,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update region: status=%d body=%s", rr.Code, rr.Body.String())
	}

	drugID := createRecord(t, env, gin.H{"drug_name": "Ketamine", "storage_temp": "-20C"})

	rr = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/region/%d/assign", regionID), gin.H{"drug_id": drugID})
	if rr.Code != http.StatusOK {
		t.Fatalf("assign: status=%d body=%s", rr.Code, rr.Body.String())
	}
	rr = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/region/%d/assign", regionID), gin.H{})
	if rr.Code != http.StatusBadRequest || errorMessage(t, rr) != "drug_id is required" {
		t.Fatalf("assign without drug: status=%d body=%s", rr.Code, rr.Body.String())
	}

	var items []struct {
		DrugName string `json:"drug_name"`
	}
	rr = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/region/%d/items", regionID), nil)
	decodeBody(t, rr, &items)
	if len(items) != 1 || items[0].DrugName != "Ketamine" {
		t.Fatalf("items: %+v", items)
	}

	rr = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/region/%d", regionID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete region: status=%d body=%s", rr.Code, rr.Body.String())
	}
	rr = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/layout/%d/regions", layoutID), nil)
	if body := rr.Body.String(); body != "[]" {
		t.Fatalf("regions after delete should render [], got %s", body)
	}
}
