package cgen

import "text/template"

const preambleTemplate = `/* DO NOT EDIT THIS FILE! */
/* Automatically generated from {{.Origin}} */
`

const headerTemplate = `
typedef union {
  SANE_Word w;
  SANE_Int  i;
  SANE_Bool b;
  SANE_Fixed f;
  SANE_String s;
  void *ptr;
} option_value_t;

typedef enum {
{{- range .Options}}
  {{.OptID}},
{{- end}}
  {{.Last}}
} option_t;

typedef struct {
  SANE_Option_Descriptor sod;
  option_value_t val,def;
  SANE_Word info;
} option_descriptor_t;

struct {{.StateStruct}};
static int build_option_descriptors(struct {{.StateStruct}} *ss);

`

const bodyTemplate = `
{{range .Tables}}{{.}}{{end}}
static
int find_string_in_list(SANE_String_Const str, const SANE_String_Const *list)
{
  int i;
  for (i = 0; list[i] && strcmp(str, list[i]) != 0; i++) {}
  return i;
}

static
int build_option_descriptors(struct {{.StateStruct}} *ss)
{
  SANE_Option_Descriptor *sod;
  option_descriptor_t *opt;

  memset({{.Context}}, 0, sizeof({{.Context}}));
{{range .Codes}}
  opt = &({{$.Context}}[{{.OptID}}]);
  sod = &opt->sod;
  sod->type = {{.Type}};
  sod->title = {{.Title}};
  sod->desc = {{.Desc}};
{{- if not .Group}}
  sod->name = {{.Name}};
  sod->unit = {{.Unit}};
  sod->size = {{.Size}};
  sod->cap  = {{.Cap}};
  sod->constraint_type = {{.ConstraintType}};
{{- with .Constraint}}
  sod->constraint.{{.}};
{{- end}}
  {{$.Context}}[{{.OptID}}].info = {{.Info}};
{{- range .DefaultLines}}
  {{.}}
{{- end}}
{{- end}}
{{end}}
  return 0;
}

`

var (
	preambleTmpl = template.Must(template.New("preamble").Parse(preambleTemplate))
	headerTmpl   = template.Must(template.New("header").Parse(headerTemplate))
	bodyTmpl     = template.Must(template.New("body").Parse(bodyTemplate))
)
