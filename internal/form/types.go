package form

// Document is the top-level ADUI window definition.
type Document struct {
	WindowID    string   `json:"windowId"    yaml:"windowId"`
	Name        string   `json:"name"        yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	WindowType  string   `json:"windowType"  yaml:"windowType"`
	Tabs        []Tab    `json:"tabs"        yaml:"tabs"`
	Metadata    Metadata `json:"metadata"    yaml:"metadata"`
}

// Tab groups fields. The converter always emits exactly one.
type Tab struct {
	TabID       string  `json:"tabId"       yaml:"tabId"`
	Name        string  `json:"name"        yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Sequence    int     `json:"sequence"    yaml:"sequence"`
	TabLevel    int     `json:"tabLevel"    yaml:"tabLevel"`
	IsReadOnly  bool    `json:"isReadOnly"  yaml:"isReadOnly"`
	IsSingleRow bool    `json:"isSingleRow" yaml:"isSingleRow"`
	Fields      []Field `json:"fields"      yaml:"fields"`
}

// Field is one form field, built from one source row.
type Field struct {
	FieldID     string     `json:"fieldId"             yaml:"fieldId"`
	Name        string     `json:"name"                yaml:"name"`
	Component   FieldKind  `json:"component"           yaml:"component"`
	Sequence    int        `json:"sequence"            yaml:"sequence"`
	Description string     `json:"description"         yaml:"description"`
	Help        string     `json:"help"                yaml:"help"`
	Validation  Validation `json:"validation"          yaml:"validation"`
	UI          UI         `json:"ui"                  yaml:"ui"`
	Reference   *Reference `json:"reference,omitempty" yaml:"reference,omitempty"`
	Data        *TaskData  `json:"data,omitempty"      yaml:"data,omitempty"`
}

// Validation holds the rule set of a field. Unset members are omitted, so
// each kind serializes only the rules it owns.
type Validation struct {
	MaxLength *int  `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength *int  `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Required  *bool `json:"required,omitempty"  yaml:"required,omitempty"`
	Min       *int  `json:"min,omitempty"       yaml:"min,omitempty"`
	Max       *int  `json:"max,omitempty"       yaml:"max,omitempty"`
}

// IsRequired reports whether the required flag is set and true.
func (v Validation) IsRequired() bool {
	return v.Required != nil && *v.Required
}

// UI holds presentation hints.
type UI struct {
	HelpText       string                    `json:"helpText"                 yaml:"helpText"`
	Placeholder    string                    `json:"placeholder"              yaml:"placeholder"`
	AllowZoomGraph *bool                     `json:"allowZoomGraph,omitempty" yaml:"allowZoomGraph,omitempty"`
	ShowIcons      *bool                     `json:"showIcons,omitempty"      yaml:"showIcons,omitempty"`
	StatusColors   *Embedded[StatusColors]   `json:"statusColors,omitempty"   yaml:"statusColors,omitempty"`
	PriorityColors *Embedded[PriorityColors] `json:"priorityColors,omitempty" yaml:"priorityColors,omitempty"`
}

// Reference is the option list of a SelectField.
type Reference struct {
	ID     string           `json:"id"     yaml:"id"`
	Values []ReferenceValue `json:"values" yaml:"values"`
}

// ReferenceValue is a single select option.
// Only key, display and color are emitted; consumers reject richer entries.
type ReferenceValue struct {
	Key     string `json:"key"     yaml:"key"`
	Display string `json:"display" yaml:"display"`
	Color   string `json:"color"   yaml:"color"`
}

// TaskData is the payload of a TaskListField.
type TaskData struct {
	Tasks         []Task                   `json:"tasks"         yaml:"tasks"`
	Dependencies  []Dependency             `json:"dependencies"  yaml:"dependencies"`
	Settings      TaskSettings             `json:"settings"      yaml:"settings"`
	Resources     []string                 `json:"resources"     yaml:"resources"`
	Relationships Embedded[[]Relationship] `json:"relationships" yaml:"relationships"`
}

// Task is a node of the task graph. Dates and parent are always null.
type Task struct {
	ID             string  `json:"id"             yaml:"id"`
	Name           string  `json:"name"           yaml:"name"`
	Status         string  `json:"status"         yaml:"status"`
	Priority       string  `json:"priority"       yaml:"priority"`
	Completion     int     `json:"completion"     yaml:"completion"`
	Assignee       string  `json:"assignee"       yaml:"assignee"`
	Phase          string  `json:"phase"          yaml:"phase"`
	Description    string  `json:"description"    yaml:"description"`
	EstimatedHours int     `json:"estimatedHours" yaml:"estimatedHours"`
	ActualHours    int     `json:"actualHours"    yaml:"actualHours"`
	StartDate      *string `json:"startDate"      yaml:"startDate"`
	EndDate        *string `json:"endDate"        yaml:"endDate"`
	ParentID       *string `json:"parentId"       yaml:"parentId"`
}

// Relationship links an earlier task to the task that follows it.
type Relationship struct {
	From        string `json:"from"        yaml:"from"`
	To          string `json:"to"          yaml:"to"`
	Type        string `json:"type"        yaml:"type"`
	Lag         int    `json:"lag"         yaml:"lag"`
	Description string `json:"description" yaml:"description"`
}

// Dependency links a later task back to the task it waits on.
// Its direction is the reverse of the matching Relationship.
type Dependency struct {
	FromTaskID string `json:"fromTaskId" yaml:"fromTaskId"`
	ToTaskID   string `json:"toTaskId"   yaml:"toTaskId"`
	LagDays    int    `json:"lagDays"    yaml:"lagDays"`
	Type       string `json:"type"       yaml:"type"`
}

// TaskSettings is the fixed settings block of a task graph.
type TaskSettings struct {
	DefaultStatus         string `json:"defaultStatus"         yaml:"defaultStatus"`
	DefaultPriority       string `json:"defaultPriority"       yaml:"defaultPriority"`
	AutoCalculateProgress bool   `json:"autoCalculateProgress" yaml:"autoCalculateProgress"`
	ShowProgressBars      bool   `json:"showProgressBars"      yaml:"showProgressBars"`
}

// StatusColors maps task statuses to colors.
type StatusColors struct {
	Completed  string `json:"completed"`
	InProgress string `json:"in_progress"`
	Blocked    string `json:"blocked"`
	NotStarted string `json:"not_started"`
}

// PriorityColors maps task priorities to colors.
type PriorityColors struct {
	Critical string `json:"critical"`
	High     string `json:"high"`
	Normal   string `json:"normal"`
	Low      string `json:"low"`
}

// Metadata describes how and from what the document was generated.
type Metadata struct {
	Version      string `json:"version"      yaml:"version"`
	Source       string `json:"source"       yaml:"source"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
	CreatedBy    string `json:"createdBy"    yaml:"createdBy"`
	TemplateType string `json:"templateType" yaml:"templateType"`
	Description  string `json:"description"  yaml:"description"`
	OriginalFile string `json:"originalFile" yaml:"originalFile"`
}

// MainTab returns the field container of the document, or nil if it has none.
func (d *Document) MainTab() *Tab {
	if d == nil || len(d.Tabs) == 0 {
		return nil
	}

	return &d.Tabs[0]
}

// Fields returns the fields of the main tab.
func (d *Document) Fields() []Field {
	tab := d.MainTab()
	if tab == nil {
		return nil
	}

	return tab.Fields
}
