package gen

import "text/template"

// headerData feeds the comment block every artifact starts with.
type headerData struct {
	Tool    string
	Sources []string
}

type boardNamesData struct {
	Header     headerData
	Entries    []NameLookupEntry
	EnumPrefix string
}

type outputsData struct {
	Header  headerData
	Outputs []string
}

type definitionsData struct {
	Header      headerData
	Definitions []Definition
}

const headerTemplate = `{{define "header"}}//DO NOT EDIT MANUALLY, let automation work hard.

{{range .Sources}}// auto-generated by {{$.Tool}} based on {{.}}
{{end}}{{end}}`

const boardNamesSource = `{{template "header" .Header}}#include "pch.h"

// see comments at declaration in pin_repository.h
const char * getBoardSpecificPinName(brain_pin_e brainPin) {
	switch(brainPin) {
{{range .Entries}}		case {{$.EnumPrefix}}{{.ID}}: return {{.Quoted}};
{{end}}		default: return nullptr;
	}
	return nullptr;
}
`

const outputsSource = `{{template "header" .Header}}#pragma once

Gpio GENERATED_OUTPUTS = {
{{range .Outputs}}	{{.}},
{{end}}}
`

const definitionsSource = `{{template "header" .Header}}
{{range .Definitions}}#define {{.Name}} {{.Value}}
{{end}}`

var (
	boardNamesTemplate  = template.Must(template.New("board_names").Parse(headerTemplate + boardNamesSource))
	outputsTemplate     = template.Must(template.New("outputs").Parse(headerTemplate + outputsSource))
	definitionsTemplate = template.Must(template.New("definitions").Parse(headerTemplate + definitionsSource))
)

var templateSources = []string{headerTemplate, boardNamesSource, outputsSource, definitionsSource}
