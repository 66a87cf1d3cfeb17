package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/recruitflow/recruitflow/internal/api"
)

// registerTools adds every API method as an MCP tool. Tool names match
// the JSON-RPC method names, so both surfaces share one dispatch table.
func registerTools(server *sdkmcp.Server, handler *api.Handler) {
	for _, tool := range buildToolCatalog() {
		name := tool.Name
		server.AddTool(tool, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			return callTool(ctx, handler, name, rawArguments(req.Params.Arguments))
		})
	}
}

func rawArguments(args any) json.RawMessage {
	switch v := args.(type) {
	case nil:
		return nil
	case json.RawMessage:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		return data
	}
}

func callTool(ctx context.Context, handler *api.Handler, name string, args json.RawMessage) (*sdkmcp.CallToolResult, error) {
	result, err := handler.Handle(ctx, name, args)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			data, merr := json.Marshal(apiErr)
			if merr != nil {
				return nil, merr
			}
			return &sdkmcp.CallToolResult{
				IsError: true,
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
			}, nil
		}
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

// buildToolCatalog returns all available MCP tools.
func buildToolCatalog() []*sdkmcp.Tool {
	return []*sdkmcp.Tool{
		// Candidates
		{
			Name:        "list_candidates",
			Description: "List all candidates in the roster",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_candidate",
			Description: "Get a candidate by ID",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Candidate ID"),
			}),
		},
		{
			Name:        "create_candidate",
			Description: "Add a new candidate to the roster",
			InputSchema: objectSchema([]string{"name"}, map[string]*jsonschema.Schema{
				"name":     stringProp("Candidate full name"),
				"email":    stringProp("Contact email"),
				"phone":    stringProp("Contact phone number"),
				"position": stringProp("Position title the candidate applied for"),
				"stage":    stageProp("Initial pipeline stage (defaults to Applied)"),
				"skills":   stringArrayProp("Skill keywords"),
			}),
		},
		{
			Name:        "update_candidate",
			Description: "Update candidate fields; omitted fields are left unchanged",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id":       intProp("Candidate ID"),
				"name":     stringProp("Candidate full name"),
				"email":    stringProp("Contact email"),
				"phone":    stringProp("Contact phone number"),
				"position": stringProp("Position title the candidate applied for"),
				"stage":    stageProp("Pipeline stage"),
				"skills":   stringArrayProp("Skill keywords (replaces the existing list)"),
			}),
		},
		{
			Name:        "delete_candidate",
			Description: "Remove a candidate and return the removed record",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Candidate ID"),
			}),
		},
		{
			Name:        "update_candidate_stage",
			Description: "Move a candidate to another pipeline stage",
			InputSchema: objectSchema([]string{"id", "stage"}, map[string]*jsonschema.Schema{
				"id":    intProp("Candidate ID"),
				"stage": stageProp("Target pipeline stage"),
			}),
		},
		{
			Name:        "add_candidate_note",
			Description: "Add a note to a candidate; newest notes appear first",
			InputSchema: objectSchema([]string{"id", "content"}, map[string]*jsonschema.Schema{
				"id":      intProp("Candidate ID"),
				"content": stringProp("Note text"),
				"type":    stringProp("Note category (defaults to general)"),
			}),
		},
		{
			Name:        "search_candidates",
			Description: "Search candidates by name, email, position, or skill substring",
			InputSchema: objectSchema(nil, map[string]*jsonschema.Schema{
				"query": stringProp("Case-insensitive search text (empty matches all)"),
			}),
		},
		{
			Name:        "filter_candidates",
			Description: "Filter the roster by search text, positions, and stages combined",
			InputSchema: objectSchema(nil, map[string]*jsonschema.Schema{
				"query":     stringProp("Case-insensitive search text"),
				"positions": stringArrayProp("Position titles to include"),
				"stages":    stringArrayProp("Pipeline stages to include"),
			}),
		},
		{
			Name:        "get_candidates_by_stage",
			Description: "List candidates currently in a pipeline stage",
			InputSchema: objectSchema([]string{"stage"}, map[string]*jsonschema.Schema{
				"stage": stageProp("Pipeline stage"),
			}),
		},
		{
			Name:        "schedule_candidate_interview",
			Description: "Book an ad-hoc interview entry directly on a candidate",
			InputSchema: objectSchema([]string{"id", "start"}, map[string]*jsonschema.Schema{
				"id":    intProp("Candidate ID"),
				"title": stringProp("Interview title (defaults to 'Interview with <name>')"),
				"start": dateTimeProp("Start time"),
				"end":   dateTimeProp("End time (defaults to one hour after start)"),
			}),
		},
		{
			Name:        "get_candidate_interviews",
			Description: "List the ad-hoc interview entries booked on a candidate",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Candidate ID"),
			}),
		},

		// Positions
		{
			Name:        "list_positions",
			Description: "List all open and closed positions",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_position",
			Description: "Get a position by ID",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Position ID"),
			}),
		},
		{
			Name:        "create_position",
			Description: "Open a new position",
			InputSchema: objectSchema([]string{"title"}, map[string]*jsonschema.Schema{
				"title":       stringProp("Position title"),
				"department":  stringProp("Owning department"),
				"description": stringProp("Role description"),
				"status":      enumProp("Position status (defaults to Active)", "Active", "Closed"),
			}),
		},
		{
			Name:        "update_position",
			Description: "Update position fields; omitted fields are left unchanged",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id":              intProp("Position ID"),
				"title":           stringProp("Position title"),
				"department":      stringProp("Owning department"),
				"description":     stringProp("Role description"),
				"status":          enumProp("Position status", "Active", "Closed"),
				"candidate_count": intProp("Number of candidates attributed to the position"),
			}),
		},
		{
			Name:        "delete_position",
			Description: "Remove a position and return the removed record",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Position ID"),
			}),
		},

		// Interviews
		{
			Name:        "list_interviews",
			Description: "List all interviews on the calendar",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_interview",
			Description: "Get an interview by ID",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Interview ID"),
			}),
		},
		{
			Name:        "create_interview",
			Description: "Schedule a new interview",
			InputSchema: objectSchema([]string{"start_time", "end_time"}, map[string]*jsonschema.Schema{
				"title":          stringProp("Interview title (defaults to 'New Interview')"),
				"candidate_name": stringProp("Candidate display name (defaults to 'Unknown Candidate')"),
				"candidate_id":   intProp("Roster candidate ID, if any"),
				"start_time":     dateTimeProp("Start time"),
				"end_time":       dateTimeProp("End time"),
				"status":         statusProp("Interview status (defaults to scheduled)"),
				"type":           stringProp("Interview type (defaults to technical)"),
				"location":       stringProp("Location (defaults to Virtual)"),
			}),
		},
		{
			Name:        "update_interview",
			Description: "Update interview fields; omitted fields are left unchanged",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id":             intProp("Interview ID"),
				"title":          stringProp("Interview title"),
				"candidate_name": stringProp("Candidate display name"),
				"candidate_id":   intProp("Roster candidate ID"),
				"start_time":     dateTimeProp("Start time"),
				"end_time":       dateTimeProp("End time"),
				"status":         statusProp("Interview status"),
				"type":           stringProp("Interview type"),
				"location":       stringProp("Location"),
			}),
		},
		{
			Name:        "delete_interview",
			Description: "Remove an interview and return the removed record",
			InputSchema: objectSchema([]string{"id"}, map[string]*jsonschema.Schema{
				"id": intProp("Interview ID"),
			}),
		},
		{
			Name:        "update_interview_status",
			Description: "Set the status of an interview",
			InputSchema: objectSchema([]string{"id", "status"}, map[string]*jsonschema.Schema{
				"id":     intProp("Interview ID"),
				"status": statusProp("Target status"),
			}),
		},
		{
			Name:        "reschedule_interview",
			Description: "Move an interview to a new start time and mark it rescheduled",
			InputSchema: objectSchema([]string{"id", "new_start_time"}, map[string]*jsonschema.Schema{
				"id":               intProp("Interview ID"),
				"new_start_time":   dateTimeProp("New start time"),
				"duration_minutes": intProp("Duration in minutes (defaults to 60)"),
			}),
		},
		{
			Name:        "add_interview_note",
			Description: "Append a note to an interview",
			InputSchema: objectSchema([]string{"id", "content"}, map[string]*jsonschema.Schema{
				"id":      intProp("Interview ID"),
				"content": stringProp("Note text"),
				"author":  stringProp("Note author (defaults to Current User)"),
			}),
		},
		{
			Name:        "add_interview_participant",
			Description: "Add a participant to an interview; emails are unique per interview",
			InputSchema: objectSchema([]string{"id", "email"}, map[string]*jsonschema.Schema{
				"id":    intProp("Interview ID"),
				"name":  stringProp("Participant name"),
				"email": stringProp("Participant email"),
				"role":  stringProp("Participant role (defaults to Interviewer)"),
			}),
		},
		{
			Name:        "remove_interview_participant",
			Description: "Remove a participant from an interview",
			InputSchema: objectSchema([]string{"id", "participant_id"}, map[string]*jsonschema.Schema{
				"id":             intProp("Interview ID"),
				"participant_id": stringProp("Participant ID"),
			}),
		},
		{
			Name:        "get_interviews_by_candidate",
			Description: "List interviews referencing a roster candidate",
			InputSchema: objectSchema([]string{"candidate_id"}, map[string]*jsonschema.Schema{
				"candidate_id": intProp("Candidate ID"),
			}),
		},
		{
			Name:        "get_interviews_by_range",
			Description: "List interviews starting within a date range, inclusive on both bounds",
			InputSchema: objectSchema([]string{"start", "end"}, map[string]*jsonschema.Schema{
				"start": dateTimeProp("Range start"),
				"end":   dateTimeProp("Range end"),
			}),
		},
		{
			Name:        "get_interviews_by_status",
			Description: "List interviews with a given status",
			InputSchema: objectSchema([]string{"status"}, map[string]*jsonschema.Schema{
				"status": statusProp("Interview status"),
			}),
		},
		{
			Name:        "search_interviews",
			Description: "Search interviews by title, candidate name, type, or location substring",
			InputSchema: objectSchema(nil, map[string]*jsonschema.Schema{
				"query": stringProp("Case-insensitive search text (empty matches all)"),
			}),
		},
		{
			Name:        "get_upcoming_interviews",
			Description: "List scheduled interviews starting within the next seven days",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_interview_statistics",
			Description: "Aggregate interview counts and completion rate by status",
			InputSchema: objectSchema(nil, nil),
		},

		// Dashboard
		{
			Name:        "get_dashboard_overview",
			Description: "Get headline numbers: total candidates, per-stage counts, active positions, recent additions",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_stage_metrics",
			Description: "Get candidate count and percentage for each pipeline stage",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_pipeline_board",
			Description: "Get candidates grouped into the five kanban columns",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_upcoming_tasks",
			Description: "Get up to five tasks inferred from candidates in Screening or Interview stages",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_recent_activity",
			Description: "Get the eight most recently updated candidates rendered as stage moves",
			InputSchema: objectSchema(nil, nil),
		},
		{
			Name:        "get_available_slots",
			Description: "Get open weekday scheduling slots for the next two weeks",
			InputSchema: objectSchema(nil, nil),
		},
	}
}

func objectSchema(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	if props == nil {
		props = map[string]*jsonschema.Schema{}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func stringProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func intProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description}
}

func dateTimeProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "date-time", Description: description}
}

func stringArrayProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Items:       &jsonschema.Schema{Type: "string"},
		Description: description,
	}
}

func enumProp(description string, values ...string) *jsonschema.Schema {
	enum := make([]any, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum, Description: description}
}

func stageProp(description string) *jsonschema.Schema {
	return enumProp(description, "Applied", "Screening", "Interview", "Offer", "Hired")
}

func statusProp(description string) *jsonschema.Schema {
	return enumProp(description, "scheduled", "completed", "cancelled", "rescheduled")
}
