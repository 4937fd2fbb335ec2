package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"csv-adui-converter/internal/build"
	"csv-adui-converter/internal/diagnostic"
	"csv-adui-converter/internal/form"
)

// edge is one relationship or dependency, reduced to its endpoints.
type edge struct {
	from, to string
}

// Document checks data and returns its findings. The document is valid when
// the result has no errors.
func Document(data []byte) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if !gjson.ValidBytes(data) {
		diags.AddError(diagnostic.CodeInvalidDocument, "not valid JSON", 0, "")

		return diags
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		diags.AddError(diagnostic.CodeInvalidDocument, "document must be a JSON object", 0, "")

		return diags
	}

	if root.Get("windowId").String() == "" {
		diags.AddError(diagnostic.CodeInvalidDocument, "missing windowId", 0, "windowId")
	}

	tabs := root.Get("tabs").Array()
	if len(tabs) == 0 {
		diags.AddError(diagnostic.CodeMissingTab, "document has no tabs", 0, "tabs")

		return diags
	}

	ids := make(map[string]string)

	for ti, tab := range tabs {
		for fi, field := range tab.Get("fields").Array() {
			path := fmt.Sprintf("tabs.%d.fields.%d", ti, fi)
			checkField(path, field, ids, &diags)
		}
	}

	return diags
}

func checkField(path string, field gjson.Result, ids map[string]string, diags *diagnostic.Diagnostics) {
	id := field.Get("fieldId").String()
	if id == "" {
		diags.AddError(diagnostic.CodeInvalidDocument, "missing fieldId", 0, path)

		return
	}

	if first, dup := ids[id]; dup {
		diags.AddError(diagnostic.CodeDuplicateFieldID, fmt.Sprintf("fieldId %s already used at %s", id, first), 0, path)
	} else {
		ids[id] = path
	}

	var kind form.FieldKind

	err := kind.UnmarshalText([]byte(field.Get("component").String()))
	if err != nil {
		diags.AddWarning(diagnostic.CodeComponentMismatch, err.Error(), 0, path)

		return
	}

	if !strings.HasPrefix(id, build.FieldIDPrefix(kind)) {
		diags.AddError(diagnostic.CodeComponentMismatch,
			fmt.Sprintf("fieldId %s does not match component %s", id, kind), 0, path)
	}

	if ref := field.Get("reference"); ref.Exists() {
		checkReference(path, id, ref, diags)
	}

	if kind == form.KindTaskList {
		checkTaskData(path+".data", field.Get("data"), diags)
	}
}

func checkReference(path, fieldID string, ref gjson.Result, diags *diagnostic.Diagnostics) {
	if got, want := ref.Get("id").String(), build.ReferenceID(fieldID); got != want {
		diags.AddError(diagnostic.CodeReferenceID, fmt.Sprintf("reference id %q, want %q", got, want), 0, path+".reference")
	}

	seen := make(map[string]bool)

	for _, v := range ref.Get("values").Array() {
		key := v.Get("key").String()
		if seen[key] {
			diags.AddWarning(diagnostic.CodeDuplicateOptionKey,
				fmt.Sprintf("option key %s occurs more than once", key), 0, path+".reference")
		}

		seen[key] = true
	}
}

func checkTaskData(path string, data gjson.Result, diags *diagnostic.Diagnostics) {
	if !data.IsObject() {
		diags.AddError(diagnostic.CodeInvalidDocument, "task-list field has no data", 0, path)

		return
	}

	relsText := data.Get("relationships")
	if relsText.Type != gjson.String || !gjson.Valid(relsText.Str) || !gjson.Parse(relsText.Str).IsArray() {
		diags.AddError(diagnostic.CodeInvalidEmbedded, "relationships must be a string holding a JSON list", 0, path+".relationships")

		return
	}

	var tasks []string

	index := make(map[string]int)

	for _, task := range data.Get("tasks").Array() {
		id := task.Get("id").String()
		index[id] = len(tasks)
		tasks = append(tasks, id)
	}

	rels := edges(gjson.Parse(relsText.Str), "from", "to")
	deps := edges(data.Get("dependencies"), "fromTaskId", "toTaskId")

	want := max(len(tasks)-1, 0)
	if len(rels) != want || len(deps) != want {
		diags.AddError(diagnostic.CodeEdgeCount,
			fmt.Sprintf("%d tasks need %d relationships and %d dependencies, found %d and %d",
				len(tasks), want, want, len(rels), len(deps)),
			0, path)
	}

	checkEndpoints(path+".relationships", rels, index, diags)
	checkEndpoints(path+".dependencies", deps, index, diags)

	for i := range min(len(rels), len(deps)) {
		if deps[i].from != rels[i].to || deps[i].to != rels[i].from {
			diags.AddError(diagnostic.CodeEdgeDirection,
				fmt.Sprintf("dependency %d (%s -> %s) is not the reverse of relationship %d (%s -> %s)",
					i, deps[i].from, deps[i].to, i, rels[i].from, rels[i].to),
				0, path)
		}
	}

	for i, rel := range rels {
		if i+1 < len(tasks) && (rel.from != tasks[i] || rel.to != tasks[i+1]) {
			diags.AddError(diagnostic.CodeEdgeDirection,
				fmt.Sprintf("relationship %d (%s -> %s) does not link consecutive tasks %s and %s",
					i, rel.from, rel.to, tasks[i], tasks[i+1]),
				0, path)
		}
	}

	checkCycles(path+".dependencies", tasks, deps, index, diags)
}

func edges(list gjson.Result, fromKey, toKey string) []edge {
	var out []edge

	for _, e := range list.Array() {
		out = append(out, edge{from: e.Get(fromKey).String(), to: e.Get(toKey).String()})
	}

	return out
}

func checkEndpoints(path string, list []edge, index map[string]int, diags *diagnostic.Diagnostics) {
	for i, e := range list {
		for _, id := range []string{e.from, e.to} {
			if _, ok := index[id]; !ok {
				diags.AddError(diagnostic.CodeUnknownTask, fmt.Sprintf("edge %d names unknown task %q", i, id), 0, path)
			}
		}
	}
}

// checkCycles orders tasks so that each dependency's target precedes its source.
func checkCycles(path string, tasks []string, deps []edge, index map[string]int, diags *diagnostic.Diagnostics) {
	waitsOn := make([][]int, len(tasks))

	for _, d := range deps {
		from, okFrom := index[d.from]
		to, okTo := index[d.to]

		if !okFrom || !okTo {
			continue
		}

		waitsOn[from] = append(waitsOn[from], to)
	}

	_, err := topoSort(tasks, func(i int) []int { return waitsOn[i] })

	var cycle *CycleError
	if errors.As(err, &cycle) {
		diags.AddError(diagnostic.CodeDependencyCycle, cycle.Error(), 0, path)
	}
}
