package markers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vast-data/sane-optgen/core"
)

func TestCName(t *testing.T) {
	tests := map[string]string{
		"resolution":    "resolution",
		"tl-x":          "tl_x",
		"gamma.table 2": "gamma_table_2",
		"_group_1":      "_group_1",
		"café":          "caf_",
		"größe-x":       "gr__e_x",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CName(in), "CName(%q)", in)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	o := &core.Option{Name: "tl-x", Type: core.TypeFixed, Count: 1, HasName: true}
	require.NoError(t, Normalize([]*core.Option{o}, Prefixes{Opt: "opt_", Constraint: "constraint_"}))

	assert.Equal(t, "tl_x", o.CName)
	assert.Equal(t, "opt_tl_x", o.OptID)
	assert.Equal(t, "constraint_tl_x", o.ConstraintID)
	assert.Equal(t, core.DefaultTitle, o.Title)
	assert.Equal(t, "@sod->title", o.Verbatim[core.FieldDesc])
	assert.Equal(t, "SANE_UNIT_NONE", o.Unit)
	assert.Equal(t, core.ConstraintNone, o.ConstraintKind)
}

func TestNormalize_ConstraintKind(t *testing.T) {
	tests := []struct {
		name    string
		option  *core.Option
		want    core.ConstraintKind
		wantErr bool
	}{
		{
			name:   "string list",
			option: &core.Option{Type: core.TypeString, Constraint: &core.Constraint{List: []string{"a"}}},
			want:   core.ConstraintStringList,
		},
		{
			name:   "word list",
			option: &core.Option{Type: core.TypeInt, Constraint: &core.Constraint{List: []string{"1"}}},
			want:   core.ConstraintWordList,
		},
		{
			name:   "range",
			option: &core.Option{Type: core.TypeFixed, Constraint: &core.Constraint{Range: &[3]string{"0", "1", "0"}}},
			want:   core.ConstraintRange,
		},
		{
			name:   "verbatim word list",
			option: &core.Option{Type: core.TypeInt, Verbatim: map[core.Field]string{core.FieldConstraint: "@word_list = ss->dpi_list"}},
			want:   core.ConstraintWordList,
		},
		{
			name:   "verbatim range",
			option: &core.Option{Type: core.TypeInt, Verbatim: map[core.Field]string{core.FieldConstraint: "@range = &ss->xrange"}},
			want:   core.ConstraintRange,
		},
		{
			name:    "unclassifiable verbatim",
			option:  &core.Option{Type: core.TypeInt, Verbatim: map[core.Field]string{core.FieldConstraint: "@ss->list"}},
			wantErr: true,
		},
		{
			name: "explicit kind wins",
			option: &core.Option{Type: core.TypeInt, Constraint: &core.Constraint{List: []string{"1"}},
				ConstraintKind: core.ConstraintRange, HasConstraintKind: true},
			want: core.ConstraintRange,
		},
		{
			name:   "verbatim kind",
			option: &core.Option{Type: core.TypeInt, Verbatim: map[core.Field]string{core.FieldConstraintType: "@SANE_CONSTRAINT_WORD_LIST"}},
			want:   core.ConstraintWordList,
		},
		{
			name:   "external kind",
			option: &core.Option{Type: core.TypeInt, Verbatim: map[core.Field]string{core.FieldConstraintType: "@ss->ctype"}},
			want:   core.ConstraintExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.option.Name = "x"
			err := Normalize([]*core.Option{tt.option}, Prefixes{Opt: "opt_", Constraint: "constraint_"})
			if tt.wantErr {
				assert.True(t, core.IsParseErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.option.ConstraintKind)
		})
	}
}

func TestNormalize_ClashWithOptionCount(t *testing.T) {
	input := "BEGIN SANE_Option_Descriptor\ntype int opt-num-opts\nEND\n"
	_, err := Parse(strings.NewReader(input), Options{})
	require.Error(t, err)

	var pErr *core.ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 2, pErr.Line)
	assert.Contains(t, pErr.Reason, "the option count entry")
	assert.NotContains(t, pErr.Reason, "line 0")
}

func TestNormalize_DuplicateIdentifier(t *testing.T) {
	options := []*core.Option{
		{Line: 2, Name: "tl-x"},
		{Line: 5, Name: "tl.x"},
	}
	err := Normalize(options, Prefixes{Opt: "opt_", Constraint: "constraint_"})
	require.Error(t, err)

	var pErr *core.ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 5, pErr.Line)
	assert.Contains(t, pErr.Reason, "line 2")
}

func TestParse_NoBlock(t *testing.T) {
	result, err := Parse(strings.NewReader("type int x\n"), Options{})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Zero(t, result.Blocks)
	assert.Empty(t, result.Options)
}

func TestParse_EmptyBlock(t *testing.T) {
	result, err := Parse(strings.NewReader("BEGIN SANE_Option_Descriptor\nEND\n"), Options{})
	require.NoError(t, err)
	assert.True(t, result.Found)
	require.Len(t, result.Options, 1)

	num := result.Options[0]
	assert.Equal(t, "opt_opt_num_opts", num.OptID)
	assert.Equal(t, core.TypeInt, num.Type)
	assert.Equal(t, []string{"SANE_CAP_SOFT_DETECT"}, num.Caps)
	code, ok := num.VerbatimCode(core.FieldDefault)
	require.True(t, ok)
	assert.Equal(t, "w = opt_last", code)
}

func TestParse_MultipleBlocks(t *testing.T) {
	input := `/* first */
BEGIN SANE_Option_Descriptor
type group
  title General
type int resolution
END SANE_Option_Descriptor

int helper(void);

BEGIN SANE_Option_Descriptor
type group
type bool preview
  title this title belongs to preview
END SANE_Option_Descriptor
`
	result, err := Parse(strings.NewReader(input), Options{
		Prefixes: Prefixes{Opt: "OPT_"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Blocks)

	var ids []string
	for _, o := range result.Options {
		ids = append(ids, o.OptID)
	}
	assert.Equal(t, []string{"OPT_opt_num_opts", "OPT__group_1", "OPT_resolution", "OPT__group_2", "OPT_preview"}, ids)
	assert.Equal(t, "constraint_resolution", result.Options[2].ConstraintID)
	assert.Equal(t, "this title belongs to preview", result.Options[4].Title)

	code, _ := result.Options[0].VerbatimCode(core.FieldDefault)
	assert.Equal(t, "w = OPT_last", code)
}

func TestParse_CustomMarker(t *testing.T) {
	input := "// @options\ntype int x\nend\n"
	result, err := Parse(strings.NewReader(input), Options{BeginMarker: "// @options"})
	require.NoError(t, err)
	require.Len(t, result.Options, 2)
	assert.Equal(t, "x", result.Options[1].Name)
	assert.Equal(t, 2, result.Options[1].Line)
}

func TestParse_LongLines(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	input := "/* " + long + " */\n" +
		"BEGIN SANE_Option_Descriptor\n" +
		"type string note[16]\n" +
		"  desc " + long + "\n" +
		"END"
	result, err := Parse(strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, result.Options, 2)

	note := result.Options[1]
	assert.Equal(t, 3, note.Line)
	assert.Equal(t, long, note.Desc)
}

func TestParse_ErrorCarriesLine(t *testing.T) {
	input := "BEGIN SANE_Option_Descriptor\n\ntype int x\n  constraint {1|2\nEND\n"
	_, err := Parse(strings.NewReader(input), Options{})
	require.Error(t, err)

	var pErr *core.ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, 4, pErr.Line)
	assert.Equal(t, "constraint {1|2", pErr.Text)
}
