package build

import (
	"fmt"

	"csv-adui-converter/internal/form"
)

// TaskGraph is the task list of a TaskListField with its two edge sets.
// Relationships and Dependencies are both derived from task order by Link.
type TaskGraph struct {
	Tasks         []form.Task
	Relationships []form.Relationship
	Dependencies  []form.Dependency
	Settings      form.TaskSettings
	Resources     []string
}

// ParseTasks parses the comma-separated input column of a task-list field.
// Newlines have no special meaning here, unlike ParseOptions.
func ParseTasks(raw string) TaskGraph {
	return NewTaskGraph(splitTokens(raw, ","))
}

// NewTaskGraph builds a linked graph with one task per name, in order.
func NewTaskGraph(names []string) TaskGraph {
	g := TaskGraph{
		Tasks:     make([]form.Task, 0, len(names)),
		Settings:  form.DefaultTaskSettings(),
		Resources: []string{},
	}

	for i, name := range names {
		g.Tasks = append(g.Tasks, NewTask(TaskID(i+1), name))
	}

	g.Link()

	return g
}

// TaskID returns the identifier of the task at 1-based position n, e.g. "TASK007".
func TaskID(n int) string {
	return fmt.Sprintf("TASK%03d", n)
}

// NewTask returns a task with the fixed defaults.
func NewTask(id, name string) form.Task {
	return form.Task{
		ID:             id,
		Name:           name,
		Status:         form.TaskStatusNotStarted,
		Priority:       form.TaskPriorityMedium,
		Completion:     0,
		Assignee:       form.TaskAssignee,
		Phase:          form.TaskPhase,
		Description:    "Task: " + name,
		EstimatedHours: form.TaskEstimatedHours,
		ActualHours:    0,
		StartDate:      nil,
		EndDate:        nil,
		ParentID:       nil,
	}
}

// Link rebuilds both edge sets from the current task order.
// Each consecutive pair (a, b) yields Relationship a->b and Dependency b->a.
func (g *TaskGraph) Link() {
	n := max(len(g.Tasks)-1, 0)

	g.Relationships = make([]form.Relationship, 0, n)
	g.Dependencies = make([]form.Dependency, 0, n)

	for i := range n {
		earlier, later := g.Tasks[i], g.Tasks[i+1]

		g.Relationships = append(g.Relationships, form.Relationship{
			From:        earlier.ID,
			To:          later.ID,
			Type:        form.RelationshipType,
			Lag:         0,
			Description: earlier.Name + " to " + later.Name,
		})

		// Reversed on purpose: the importing builder reads dependencies
		// as "later task waits on earlier task".
		g.Dependencies = append(g.Dependencies, form.Dependency{
			FromTaskID: later.ID,
			ToTaskID:   earlier.ID,
			LagDays:    0,
			Type:       form.DependencyType,
		})
	}
}

// Data returns the serializable payload of the graph.
func (g TaskGraph) Data() *form.TaskData {
	return &form.TaskData{
		Tasks:         g.Tasks,
		Dependencies:  g.Dependencies,
		Settings:      g.Settings,
		Resources:     g.Resources,
		Relationships: form.Embedded[[]form.Relationship]{Value: g.Relationships},
	}
}
