package repository

import (
	"sort"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Project is a workspace project visible on the dashboard.
type Project struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Projects is the in-memory project collection.
type Projects struct {
	items *gocache.Cache
}

// NewProjects creates an empty project collection.
func NewProjects() *Projects {
	return &Projects{items: newCollection()}
}

// Create adds a project and returns it with a generated ID.
func (p *Projects) Create(workspaceID, name, status string) Project {
	project := Project{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        name,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	p.put(project)
	return project
}

// Get returns a project by ID.
func (p *Projects) Get(id string) (Project, bool) {
	v, ok := p.items.Get(id)
	if !ok {
		return Project{}, false
	}
	return v.(Project), true
}

// List returns all projects ordered by name.
func (p *Projects) List() []Project {
	items := p.items.Items()
	out := make([]Project, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(Project))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (p *Projects) put(project Project) {
	p.items.SetDefault(project.ID, project)
}
