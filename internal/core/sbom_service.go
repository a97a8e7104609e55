package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/EmundoT/dep-comply/internal/purl"
	"github.com/EmundoT/dep-comply/internal/types"
	"github.com/EmundoT/dep-comply/internal/version"
	"github.com/google/uuid"
	"github.com/spdx/tools-golang/spdx"
	"github.com/spdx/tools-golang/spdx/v2/common"
	spdx23 "github.com/spdx/tools-golang/spdx/v2/v2_3"
)

// SBOMFormat represents supported SBOM output formats
type SBOMFormat string

const (
	// SBOMFormatCycloneDX is the CycloneDX 1.5 JSON format
	SBOMFormatCycloneDX SBOMFormat = "cyclonedx"
	// SBOMFormatSPDX is the SPDX 2.3 JSON format
	SBOMFormatSPDX SBOMFormat = "spdx"
)

// scopeProperty marks a component as runtime or build-tooling scope.
const scopeProperty = "dep-comply:scope"

// SBOMService renders a compliance snapshot as a Software Bill of Materials.
// Both dependency lists of the snapshot are included; build-tooling entries
// carry a scope property so consumers can tell the axes apart.
type SBOMService struct {
	projectName string
}

// NewSBOMService creates a new SBOMService for the named project.
func NewSBOMService(projectName string) *SBOMService {
	return &SBOMService{projectName: projectName}
}

// Generate creates an SBOM in the specified format from the snapshot.
func (g *SBOMService) Generate(export types.DependencyExport, format SBOMFormat) ([]byte, error) {
	switch format {
	case SBOMFormatCycloneDX:
		return g.generateCycloneDX(export)
	case SBOMFormatSPDX:
		return g.generateSPDX(export)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// generateCycloneDX creates a CycloneDX 1.5 JSON SBOM
func (g *SBOMService) generateCycloneDX(export types.DependencyExport) ([]byte, error) {
	bom := cdx.NewBOM()
	bom.SerialNumber = "urn:uuid:" + uuid.New().String()
	bom.Version = 1

	timestamp := time.Now().UTC().Format(time.RFC3339)
	bom.Metadata = &cdx.Metadata{
		Timestamp: timestamp,
		Tools: &cdx.ToolsChoice{
			Tools: &[]cdx.Tool{
				{
					Vendor:  "dep-comply",
					Name:    "dep-comply",
					Version: version.GetVersion(),
				},
			},
		},
		Component: &cdx.Component{
			Type:    cdx.ComponentTypeApplication,
			Name:    g.projectName,
			Version: "local",
		},
	}

	components := make([]cdx.Component, 0, len(export.Dependencies)+len(export.BuildDependencies))
	for _, id := range export.Dependencies {
		components = append(components, g.buildCycloneDXComponent(id, "runtime"))
	}
	for _, id := range export.BuildDependencies {
		components = append(components, g.buildCycloneDXComponent(id, "build"))
	}
	bom.Components = &components

	var buf strings.Builder
	encoder := cdx.NewBOMEncoder(&buf, cdx.BOMFileFormatJSON)
	encoder.SetPretty(true)
	if err := encoder.Encode(bom); err != nil {
		return nil, fmt.Errorf("encode CycloneDX: %w", err)
	}

	return []byte(buf.String()), nil
}

// buildCycloneDXComponent creates a CycloneDX component for one dependency
func (g *SBOMService) buildCycloneDXComponent(id types.DependencyIdentifier, scope string) cdx.Component {
	properties := []cdx.Property{
		{Name: scopeProperty, Value: scope},
	}
	return cdx.Component{
		Type:       cdx.ComponentTypeLibrary,
		BOMRef:     id.String(),
		Group:      id.Group,
		Name:       id.Name,
		Version:    id.Version,
		PackageURL: purl.Maven(id.Group, id.Name, id.Version),
		Properties: &properties,
	}
}

// generateSPDX creates an SPDX 2.3 JSON SBOM
func (g *SBOMService) generateSPDX(export types.DependencyExport) ([]byte, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	doc := &spdx23.Document{
		SPDXVersion:       spdx.Version,
		DataLicense:       spdx.DataLicense,
		SPDXIdentifier:    common.ElementID("DOCUMENT"),
		DocumentName:      g.projectName + "-dependency-sbom",
		DocumentNamespace: fmt.Sprintf("https://dep-comply.dev/spdx/%s/%s", g.projectName, uuid.New().String()),
		CreationInfo: &spdx23.CreationInfo{
			Created: timestamp,
			Creators: []common.Creator{
				{CreatorType: "Tool", Creator: "dep-comply-" + version.GetVersion()},
			},
		},
	}

	total := len(export.Dependencies) + len(export.BuildDependencies)
	packages := make([]*spdx23.Package, 0, total)
	relationships := make([]*spdx23.Relationship, 0, total)

	appendPackage := func(id types.DependencyIdentifier, scope string) {
		pkg := g.buildSPDXPackage(id, scope)
		packages = append(packages, pkg)

		// RefB must match the package's SPDXID exactly, including the
		// "Package-" prefix.
		relationships = append(relationships, &spdx23.Relationship{
			RefA:         common.MakeDocElementID("", "DOCUMENT"),
			RefB:         common.MakeDocElementID("", string(pkg.PackageSPDXIdentifier)),
			Relationship: "DESCRIBES",
		})
	}
	for _, id := range export.Dependencies {
		appendPackage(id, "runtime")
	}
	for _, id := range export.BuildDependencies {
		appendPackage(id, "build")
	}

	doc.Packages = packages
	doc.Relationships = relationships

	return spdxToJSON(doc)
}

// buildSPDXPackage creates an SPDX package for one dependency
func (g *SBOMService) buildSPDXPackage(id types.DependencyIdentifier, scope string) *spdx23.Package {
	spdxID := common.ElementID("Package-" + sanitizeSPDXID(id.String()))

	return &spdx23.Package{
		PackageName:             id.Group + ":" + id.Name,
		PackageSPDXIdentifier:   spdxID,
		PackageVersion:          id.Version,
		PackageDownloadLocation: "NOASSERTION",
		FilesAnalyzed:           false,
		PackageCopyrightText:    "NOASSERTION",
		PackageLicenseDeclared:  "NOASSERTION",
		PackageLicenseConcluded: "NOASSERTION",
		PackageComment:          fmt.Sprintf("scope=%s", scope),
		PackageExternalReferences: []*spdx23.PackageExternalReference{
			{
				Category: common.CategoryPackageManager,
				RefType:  "purl",
				Locator:  purl.Maven(id.Group, id.Name, id.Version),
			},
		},
	}
}

// sanitizeSPDXID converts a string to a valid SPDX identifier
// SPDX IDs must match [a-zA-Z0-9.-]+
func sanitizeSPDXID(s string) string {
	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			result.WriteRune(r)
		} else {
			result.WriteRune('-')
		}
	}
	return result.String()
}

// spdxJSON is the JSON representation of an SPDX document.
// Explicit structs keep the field names aligned with SPDX 2.3 JSON.
type spdxJSON struct {
	SPDXVersion       string                 `json:"spdxVersion"`
	DataLicense       string                 `json:"dataLicense"`
	SPDXID            string                 `json:"SPDXID"`
	Name              string                 `json:"name"`
	DocumentNamespace string                 `json:"documentNamespace"`
	CreationInfo      spdxCreationInfoJSON   `json:"creationInfo"`
	Packages          []spdxPackageJSON      `json:"packages"`
	Relationships     []spdxRelationshipJSON `json:"relationships"`
}

type spdxCreationInfoJSON struct {
	Created  string   `json:"created"`
	Creators []string `json:"creators"`
}

type spdxPackageJSON struct {
	SPDXID           string                `json:"SPDXID"`
	Name             string                `json:"name"`
	VersionInfo      string                `json:"versionInfo"`
	DownloadLocation string                `json:"downloadLocation"`
	LicenseDeclared  string                `json:"licenseDeclared"`
	LicenseConcluded string                `json:"licenseConcluded"`
	CopyrightText    string                `json:"copyrightText"`
	FilesAnalyzed    bool                  `json:"filesAnalyzed"`
	ExternalRefs     []spdxExternalRefJSON `json:"externalRefs,omitempty"`
	Comment          string                `json:"comment,omitempty"`
}

type spdxExternalRefJSON struct {
	ReferenceCategory string `json:"referenceCategory"`
	ReferenceType     string `json:"referenceType"`
	ReferenceLocator  string `json:"referenceLocator"`
}

type spdxRelationshipJSON struct {
	SPDXElementID      string `json:"spdxElementId"`
	RelationshipType   string `json:"relationshipType"`
	RelatedSPDXElement string `json:"relatedSpdxElement"`
}

// spdxToJSON converts an SPDX document to JSON bytes using struct marshaling
func spdxToJSON(doc *spdx23.Document) ([]byte, error) {
	creators := make([]string, 0, len(doc.CreationInfo.Creators))
	for _, c := range doc.CreationInfo.Creators {
		creators = append(creators, fmt.Sprintf("%s: %s", c.CreatorType, c.Creator))
	}

	packages := make([]spdxPackageJSON, 0, len(doc.Packages))
	for _, pkg := range doc.Packages {
		p := spdxPackageJSON{
			SPDXID:           fmt.Sprintf("SPDXRef-%s", pkg.PackageSPDXIdentifier),
			Name:             pkg.PackageName,
			VersionInfo:      pkg.PackageVersion,
			DownloadLocation: pkg.PackageDownloadLocation,
			LicenseDeclared:  pkg.PackageLicenseDeclared,
			LicenseConcluded: pkg.PackageLicenseConcluded,
			CopyrightText:    pkg.PackageCopyrightText,
			FilesAnalyzed:    pkg.FilesAnalyzed,
			Comment:          pkg.PackageComment,
		}

		if len(pkg.PackageExternalReferences) > 0 {
			refs := make([]spdxExternalRefJSON, 0, len(pkg.PackageExternalReferences))
			for _, ref := range pkg.PackageExternalReferences {
				refs = append(refs, spdxExternalRefJSON{
					ReferenceCategory: string(ref.Category),
					ReferenceType:     ref.RefType,
					ReferenceLocator:  ref.Locator,
				})
			}
			p.ExternalRefs = refs
		}

		packages = append(packages, p)
	}

	relationships := make([]spdxRelationshipJSON, 0, len(doc.Relationships))
	for _, rel := range doc.Relationships {
		relationships = append(relationships, spdxRelationshipJSON{
			SPDXElementID:      fmt.Sprintf("SPDXRef-%s", rel.RefA.ElementRefID),
			RelationshipType:   rel.Relationship,
			RelatedSPDXElement: fmt.Sprintf("SPDXRef-%s", rel.RefB.ElementRefID),
		})
	}

	jsonDoc := spdxJSON{
		SPDXVersion:       doc.SPDXVersion,
		DataLicense:       doc.DataLicense,
		SPDXID:            fmt.Sprintf("SPDXRef-%s", doc.SPDXIdentifier),
		Name:              doc.DocumentName,
		DocumentNamespace: doc.DocumentNamespace,
		CreationInfo: spdxCreationInfoJSON{
			Created:  doc.CreationInfo.Created,
			Creators: creators,
		},
		Packages:      packages,
		Relationships: relationships,
	}

	return json.MarshalIndent(jsonDoc, "", "  ")
}
