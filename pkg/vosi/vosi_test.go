package vosi

import (
	"os"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/vosi/pkg/errors"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestParseAvailability(t *testing.T) {
	a, err := ParseAvailability(openFixture(t, "availability.xml"))
	if err != nil {
		t.Fatalf("ParseAvailability: %v", err)
	}
	if !a.Available {
		t.Error("Available = false, want true")
	}
	want := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if a.UpSince == nil || !a.UpSince.Equal(want) {
		t.Errorf("UpSince = %v, want %v", a.UpSince, want)
	}
	if a.DownAt != nil || a.BackAt != nil {
		t.Errorf("DownAt/BackAt = %v/%v, want nil", a.DownAt, a.BackAt)
	}
	if len(a.Notes) != 1 || a.Notes[0] != "service is accepting queries" {
		t.Errorf("Notes = %v", a.Notes)
	}
}

func TestParseAvailabilityVariants(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		available bool
		upSince   string
		wantErr   bool
	}{
		{
			name:      "unprefixed, no upSince",
			doc:       `<availability><available>false</available></availability>`,
			available: false,
		},
		{
			name:      "numeric boolean, zoneless time",
			doc:       `<availability><available> 1 </available><upSince>2017-03-04T05:06:07</upSince></availability>`,
			available: true,
			upSince:   "2017-03-04T05:06:07Z",
		},
		{
			name:      "fractional seconds",
			doc:       `<availability><available>true</available><upSince>2017-03-04T05:06:07.5Z</upSince></availability>`,
			available: true,
			upSince:   "2017-03-04T05:06:07.5Z",
		},
		{
			name:    "bad boolean",
			doc:     `<availability><available>yes</available></availability>`,
			wantErr: true,
		},
		{
			name:    "bad time",
			doc:     `<availability><available>true</available><upSince>yesterday</upSince></availability>`,
			wantErr: true,
		},
		{
			name:    "wrong root",
			doc:     `<capabilities/>`,
			wantErr: true,
		},
		{
			name:    "not xml",
			doc:     `{"available": true}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAvailability(strings.NewReader(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAvailability() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidDocument) {
					t.Errorf("error code = %v, want INVALID_DOCUMENT", errors.GetCode(err))
				}
				return
			}
			if a.Available != tt.available {
				t.Errorf("Available = %v, want %v", a.Available, tt.available)
			}
			if tt.upSince == "" {
				if a.UpSince != nil {
					t.Errorf("UpSince = %v, want nil", a.UpSince)
				}
				return
			}
			want, _ := time.Parse(time.RFC3339Nano, tt.upSince)
			if a.UpSince == nil || !a.UpSince.Equal(want) {
				t.Errorf("UpSince = %v, want %v", a.UpSince, want)
			}
		})
	}
}

func TestParseCapabilities(t *testing.T) {
	caps, err := ParseCapabilities(openFixture(t, "capabilities.xml"), "http://example.com/tap/capabilities")
	if err != nil {
		t.Fatalf("ParseCapabilities: %v", err)
	}
	if caps.URL != "http://example.com/tap/capabilities" {
		t.Errorf("URL = %q", caps.URL)
	}
	if caps.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", caps.Len())
	}

	var ids []string
	for c := range caps.All() {
		ids = append(ids, c.StandardID)
	}
	wantIDs := []string{StandardIDCapabilities, StandardIDAvailability, "ivo://ivoa.net/std/VOSI#tables-1.1", "ivo://ivoa.net/std/TAP"}
	if !slices.Equal(ids, wantIDs) {
		t.Errorf("standard ids = %v, want %v", ids, wantIDs)
	}

	tables, ok := caps.FindByStandardID(StandardIDTables)
	if !ok {
		t.Fatal("FindByStandardID(tables) found nothing")
	}
	wantURLs := []string{
		"http://example.com/tap/tables",
		"http://mirror.example.com/tap/tables",
		"http://example.com/legacy/tables",
	}
	if got := tables.AccessURLs(); !slices.Equal(got, wantURLs) {
		t.Errorf("AccessURLs() = %v, want %v", got, wantURLs)
	}

	iface := tables.Interfaces[0]
	if iface.Type != "vs:ParamHTTP" || iface.Role != "std" || iface.Version != "1.1" {
		t.Errorf("interface attrs = %+v", iface)
	}
	if len(tables.Interfaces[1].SecurityMethods) != 1 {
		t.Errorf("SecurityMethods = %v", tables.Interfaces[1].SecurityMethods)
	}

	tap, _ := caps.FindByStandardID("ivo://ivoa.net/std/TAP")
	if tap.Type != "tr:TableAccess" || tap.Description != "Table access" {
		t.Errorf("TAP capability = %+v", tap)
	}
}

func TestFindByStandardIDMissing(t *testing.T) {
	caps, err := ParseCapabilities(strings.NewReader(`<capabilities>
		<capability standardID="ivo://ivoa.net/std/TAP"/>
	</capabilities>`), "u")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := caps.FindByStandardID(StandardIDTables); ok {
		t.Error("FindByStandardID should not match")
	}
}

func TestParseCapabilitiesInvalid(t *testing.T) {
	_, err := ParseCapabilities(strings.NewReader("<capabilities><capability>"), "http://x/capabilities")
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("error = %v, want INVALID_DOCUMENT", err)
	}
}

func TestParseTables(t *testing.T) {
	ts, err := ParseTables(openFixture(t, "tables.xml"))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}
	if ts.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ts.Len())
	}
	want := []string{"ivoa.obscore", "tap_schema.tables", "tap_schema.columns"}
	if got := ts.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	obscore, ok := ts.Table("ivoa.obscore")
	if !ok {
		t.Fatal("Table(ivoa.obscore) not found")
	}
	if obscore.IsShallow() {
		t.Error("obscore should not be shallow")
	}
	if obscore.Type != "output" {
		t.Errorf("Type = %q", obscore.Type)
	}
	obsID, ok := obscore.Column("obs_id")
	if !ok {
		t.Fatal("column obs_id missing")
	}
	if !obsID.Indexed() || !obsID.Primary() || obsID.Nullable() || !obsID.Std() {
		t.Errorf("obs_id flags = %v std=%q", obsID.Flags, obsID.StdAttr)
	}
	if obsID.DataType.String() != "char[*]" || obsID.DataType.Type != "vs:VOTableType" {
		t.Errorf("obs_id datatype = %+v", obsID.DataType)
	}
	ra, _ := obscore.Column("s_ra")
	if ra.Unit != "deg" || ra.DataType.String() != "double" {
		t.Errorf("s_ra = %+v", ra)
	}

	tables, _ := ts.Table("tap_schema.tables")
	if !tables.IsShallow() {
		t.Error("tap_schema.tables should be shallow")
	}
	columns, _ := ts.Table("tap_schema.columns")
	if columns.IsShallow() {
		t.Error("table with only a foreign key should not be shallow")
	}
	fk := columns.ForeignKeys[0]
	if fk.TargetTable != "tap_schema.tables" || fk.Columns[0].From != "table_name" {
		t.Errorf("foreign key = %+v", fk)
	}

	if _, ok := ts.Table("missing"); ok {
		t.Error("Table(missing) should report false")
	}
}

func TestParseTablesSingleTable(t *testing.T) {
	ts, err := ParseTables(openFixture(t, "table.xml"))
	if err != nil {
		t.Fatalf("ParseTables: %v", err)
	}
	if ts.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", ts.Len())
	}

	table, err := ParseTable(openFixture(t, "table.xml"))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if table.Name != "tap_schema.tables" {
		t.Errorf("Name = %q", table.Name)
	}
	if table.NRows == nil || *table.NRows != 42 {
		t.Errorf("NRows = %v, want 42", table.NRows)
	}
	if len(table.Columns) != 2 {
		t.Errorf("len(Columns) = %d, want 2", len(table.Columns))
	}
}

func TestParseTablesTopLevel(t *testing.T) {
	doc := `<tableset>
		<schema><name>s</name><table><name>s.a</name></table></schema>
		<table><name>b</name></table>
	</tableset>`
	ts, err := ParseTables(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if got := ts.Names(); !slices.Equal(got, []string{"s.a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
	first, ok := ts.First()
	if !ok || first.Name != "s.a" {
		t.Errorf("First() = %v, %v", first, ok)
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"empty tableset", "<tableset/>"},
		{"wrong root", "<availability/>"},
		{"truncated", "<tableset><schema>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(tt.doc))
			if !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("ParseTable() error = %v, want INVALID_DOCUMENT", err)
			}
		})
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt   DataType
		want string
	}{
		{DataType{Value: "int"}, "int"},
		{DataType{Value: "char", ArraySize: "1"}, "char"},
		{DataType{Value: "char", ArraySize: "32*"}, "char[32*]"},
	}
	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
