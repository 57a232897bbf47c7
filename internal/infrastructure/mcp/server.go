// Package mcp serves the stored inspection sheet to MCP clients. Tools
// mirror the CLI surface: read the draft, edit fields, render the report.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	mcp "github.com/felixgeelhaar/mcp-go"

	"github.com/aufield/sitesheet/internal/domain/inspection"
	"github.com/aufield/sitesheet/internal/infrastructure/wiring"
)

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-facing error carrying only the friendly message,
// never internal details.
func mcpErr(friendly string) error {
	return fmt.Errorf("%s", friendly)
}

type Server struct {
	mcpServer *mcp.Server
	ws        *wiring.Workspace
	logger    *slog.Logger
}

func NewServer(root string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ws, err := wiring.Open(root, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}

	info := mcp.ServerInfo{
		Name:    "sitesheet",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("Sitesheet MCP Server"),
			mcp.WithDescription("Sitesheet exposes the stored WA structural inspection sheet: client details, the fixed eight-item checklist, photo references and the rendered report."),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("One inspection draft is stored per workspace. Use sheet_get to read it, the sheet_set/sheet_update tools to edit it, and sheet_report to render the client report."),
		),
		ws:     ws,
		logger: logger,
	}

	s.registerTools()
	return s, nil
}

// Close releases the underlying store.
func (s *Server) Close() error {
	return s.ws.Close()
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("sheet_get").
		Description("Read the stored inspection draft: client details, checklist items and general notes").
		Handler(s.handleGet)

	s.mcpServer.Tool("sheet_template").
		Description("List the fixed checklist template (item ids, labels, report order) and the valid item statuses").
		Handler(s.handleTemplate)

	s.mcpServer.Tool("sheet_set_client").
		Description("Set one client detail field on the stored draft (starts a fresh draft if none exists)").
		Handler(s.handleSetClient)

	s.mcpServer.Tool("sheet_update_item").
		Description("Update the notes, status or photo reference of one checklist item").
		Handler(s.handleUpdateItem)

	s.mcpServer.Tool("sheet_set_notes").
		Description("Replace the general notes text of the stored draft").
		Handler(s.handleSetNotes)

	s.mcpServer.Tool("sheet_report").
		Description("Render the stored draft as the plain-text inspection report").
		Handler(s.handleReport)

	s.mcpServer.Tool("sheet_new").
		Description("Start a fresh inspection sheet and save it, replacing any stored draft").
		Handler(s.handleNew)

	s.mcpServer.Tool("sheet_delete").
		Description("Delete the stored inspection draft").
		Handler(s.handleDelete)
}

func (s *Server) handleGet(ctx context.Context, args struct{}) (any, error) {
	draft, err := s.ws.Sheets.Load(ctx)
	if err != nil {
		if errors.Is(err, inspection.ErrNoDraft) {
			return "No saved draft. Use sheet_new or any edit tool to start one.", nil
		}
		return nil, mcpErr("Failed to load the stored draft.")
	}
	return draft, nil
}

type templateEntry struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Label    string `json:"label"`
}

type templateResponse struct {
	Items    []templateEntry `json:"items"`
	Statuses []string        `json:"statuses"`
}

func (s *Server) handleTemplate(ctx context.Context, args struct{}) (any, error) {
	resp := templateResponse{}
	for i, def := range inspection.Template() {
		resp.Items = append(resp.Items, templateEntry{Position: i + 1, ID: def.ID, Label: def.Label})
	}
	for _, status := range inspection.AllItemStatuses() {
		resp.Statuses = append(resp.Statuses, status.String())
	}
	return resp, nil
}

type SetClientArgs struct {
	Field string `json:"field" jsonschema:"description=Client field to set: clientName, propertyAddress, inspectionDate, engineerName or registrationNumber"`
	Value string `json:"value" jsonschema:"description=New value for the field"`
}

func (s *Server) handleSetClient(ctx context.Context, args SetClientArgs) (string, error) {
	field, err := inspection.ParseClientField(args.Field)
	if err != nil {
		return "", mcpErr(fmt.Sprintf("Unknown client field %q. Valid fields: %s.", args.Field, clientFieldList()))
	}
	if _, err := s.ws.Sheets.SetClientField(ctx, field, args.Value); err != nil {
		return "", mcpErr("Failed to save the client field.")
	}
	return fmt.Sprintf("Set %s to %q.", field, args.Value), nil
}

type UpdateItemArgs struct {
	ItemID   string  `json:"item_id" jsonschema:"description=Checklist item id (see sheet_template)"`
	Notes    *string `json:"notes,omitempty" jsonschema:"description=Observation notes; omit to leave unchanged"`
	Status   *string `json:"status,omitempty" jsonschema:"description=Item status: satisfactory, monitor or defect_action_required; omit to leave unchanged"`
	PhotoURI *string `json:"photo_uri,omitempty" jsonschema:"description=Photo reference; omit to leave unchanged"`
}

func (s *Server) handleUpdateItem(ctx context.Context, args UpdateItemArgs) (any, error) {
	patch := inspection.ItemPatch{
		Notes:    args.Notes,
		PhotoURI: args.PhotoURI,
	}
	if args.Status != nil {
		status, err := inspection.ParseItemStatus(*args.Status)
		if err != nil {
			return nil, mcpErr(fmt.Sprintf("Invalid status %q. Valid statuses: satisfactory, monitor, defect_action_required.", *args.Status))
		}
		patch.Status = &status
	}
	if patch.Notes == nil && patch.Status == nil && patch.PhotoURI == nil {
		return nil, mcpErr("Nothing to update. Provide at least one of notes, status or photo_uri.")
	}

	draft, err := s.ws.Sheets.UpdateItem(ctx, args.ItemID, patch)
	if err != nil {
		if errors.Is(err, inspection.ErrItemNotFound) {
			return nil, mcpErr(fmt.Sprintf("Unknown item id %q. Valid ids: %s.", args.ItemID, strings.Join(inspection.TemplateIDs(), ", ")))
		}
		return nil, mcpErr("Failed to save the item update.")
	}

	item, _ := draft.Item(args.ItemID)
	return item, nil
}

type SetNotesArgs struct {
	Notes string `json:"notes" jsonschema:"description=The full general notes text; replaces the current notes"`
}

func (s *Server) handleSetNotes(ctx context.Context, args SetNotesArgs) (string, error) {
	if _, err := s.ws.Sheets.SetGeneralNotes(ctx, args.Notes); err != nil {
		return "", mcpErr("Failed to save the general notes.")
	}
	return "General notes updated.", nil
}

func (s *Server) handleReport(ctx context.Context, args struct{}) (string, error) {
	text, err := s.ws.Sheets.Report(ctx)
	if err != nil {
		if errors.Is(err, inspection.ErrNoDraft) {
			return "No saved draft to report on. Use sheet_new or any edit tool to start one.", nil
		}
		return "", mcpErr("Failed to render the report.")
	}
	return text, nil
}

func (s *Server) handleNew(ctx context.Context, args struct{}) (string, error) {
	draft := s.ws.Sheets.NewDraft()
	if err := s.ws.Sheets.Save(ctx, draft); err != nil {
		return "", mcpErr("Failed to save the new draft.")
	}
	return fmt.Sprintf("New inspection sheet saved (inspection date %s).", draft.ClientInfo.InspectionDate), nil
}

func (s *Server) handleDelete(ctx context.Context, args struct{}) (string, error) {
	if err := s.ws.Sheets.Delete(ctx); err != nil {
		return "", mcpErr("Failed to delete the stored draft.")
	}
	return "Saved draft removed.", nil
}

func clientFieldList() string {
	fields := inspection.AllClientFields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ServeStdio serves MCP over stdin and stdout until the context is done.
func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}
