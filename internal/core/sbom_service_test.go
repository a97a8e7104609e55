package core

import (
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// CycloneDX Generation Tests
// ============================================================================

func TestSBOMService_GenerateCycloneDX(t *testing.T) {
	svc := NewSBOMService("demo")

	output, err := svc.Generate(sampleExport(), SBOMFormatCycloneDX)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var bom map[string]interface{}
	if err := json.Unmarshal(output, &bom); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if bom["bomFormat"] != "CycloneDX" {
		t.Errorf("Expected bomFormat CycloneDX, got %v", bom["bomFormat"])
	}
	if serial, _ := bom["serialNumber"].(string); !strings.HasPrefix(serial, "urn:uuid:") {
		t.Errorf("Expected urn:uuid serial number, got %v", bom["serialNumber"])
	}

	out := string(output)
	// both axes present, with purls
	if !strings.Contains(out, "pkg:maven/commons-io/commons-io@2.11.0") {
		t.Error("Expected maven purl for runtime dependency")
	}
	if !strings.Contains(out, "pkg:maven/org.owasp/dependency-check-gradle@7.1.1") {
		t.Error("Expected maven purl for build dependency")
	}
	if !strings.Contains(out, scopeProperty) {
		t.Error("Expected scope property on components")
	}
	if !strings.Contains(out, `"demo"`) {
		t.Error("Expected project name in metadata component")
	}
}

func TestSBOMService_CycloneDXComponentCount(t *testing.T) {
	svc := NewSBOMService("demo")

	output, err := svc.Generate(sampleExport(), SBOMFormatCycloneDX)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var bom struct {
		Components []struct {
			BOMRef string `json:"bom-ref"`
		} `json:"components"`
	}
	if err := json.Unmarshal(output, &bom); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// 2 runtime + 1 build
	if len(bom.Components) != 3 {
		t.Errorf("Expected 3 components, got %d", len(bom.Components))
	}
	if bom.Components[0].BOMRef != "commons-io:commons-io:2.11.0" {
		t.Errorf("Expected coordinate bom-ref, got %s", bom.Components[0].BOMRef)
	}
}

// ============================================================================
// SPDX Generation Tests
// ============================================================================

func TestSBOMService_GenerateSPDX(t *testing.T) {
	svc := NewSBOMService("demo")

	output, err := svc.Generate(sampleExport(), SBOMFormatSPDX)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var doc struct {
		SPDXVersion string `json:"spdxVersion"`
		SPDXID      string `json:"SPDXID"`
		Name        string `json:"name"`
		Packages    []struct {
			SPDXID      string `json:"SPDXID"`
			Name        string `json:"name"`
			VersionInfo string `json:"versionInfo"`
		} `json:"packages"`
		Relationships []struct {
			SPDXElementID      string `json:"spdxElementId"`
			RelationshipType   string `json:"relationshipType"`
			RelatedSPDXElement string `json:"relatedSpdxElement"`
		} `json:"relationships"`
	}
	if err := json.Unmarshal(output, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if doc.SPDXVersion != "SPDX-2.3" {
		t.Errorf("Expected SPDX-2.3, got %s", doc.SPDXVersion)
	}
	if doc.SPDXID != "SPDXRef-DOCUMENT" {
		t.Errorf("Expected SPDXRef-DOCUMENT, got %s", doc.SPDXID)
	}
	if doc.Name != "demo-dependency-sbom" {
		t.Errorf("Unexpected document name: %s", doc.Name)
	}

	if len(doc.Packages) != 3 {
		t.Fatalf("Expected 3 packages, got %d", len(doc.Packages))
	}
	first := doc.Packages[0]
	if first.SPDXID != "SPDXRef-Package-commons-io-commons-io-2.11.0" {
		t.Errorf("Unexpected package SPDXID: %s", first.SPDXID)
	}
	if first.Name != "commons-io:commons-io" || first.VersionInfo != "2.11.0" {
		t.Errorf("Unexpected package identity: %+v", first)
	}

	// every package is DESCRIBES-related to the document
	if len(doc.Relationships) != len(doc.Packages) {
		t.Fatalf("Expected %d relationships, got %d", len(doc.Packages), len(doc.Relationships))
	}
	for _, rel := range doc.Relationships {
		if rel.SPDXElementID != "SPDXRef-DOCUMENT" || rel.RelationshipType != "DESCRIBES" {
			t.Errorf("Unexpected relationship: %+v", rel)
		}
	}
	if doc.Relationships[0].RelatedSPDXElement != doc.Packages[0].SPDXID {
		t.Errorf("Relationship target %s does not match package %s",
			doc.Relationships[0].RelatedSPDXElement, doc.Packages[0].SPDXID)
	}
}

func TestSBOMService_SPDXContainsPurls(t *testing.T) {
	svc := NewSBOMService("demo")

	output, err := svc.Generate(sampleExport(), SBOMFormatSPDX)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(string(output), "pkg:maven/org.slf4j/slf4j-api@1.7.36") {
		t.Error("Expected purl external reference in SPDX output")
	}
}

// ============================================================================
// Format Validation Tests
// ============================================================================

func TestSBOMService_UnknownFormat(t *testing.T) {
	svc := NewSBOMService("demo")
	_, err := svc.Generate(sampleExport(), SBOMFormat("xml"))
	if err == nil {
		t.Fatal("Expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("Error should name the format, got: %v", err)
	}
}

// ============================================================================
// SPDX ID Sanitization Tests
// ============================================================================

func TestSanitizeSPDXID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"commons-io:commons-io:2.11.0", "commons-io-commons-io-2.11.0"},
		{"org.slf4j:slf4j-api:1.7.36", "org.slf4j-slf4j-api-1.7.36"},
		{"already-valid.id", "already-valid.id"},
		{"weird chars!@#", "weird-chars---"},
	}

	for _, tt := range tests {
		if got := sanitizeSPDXID(tt.input); got != tt.want {
			t.Errorf("sanitizeSPDXID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
