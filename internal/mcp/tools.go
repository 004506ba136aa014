package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/curriculum/internal/domain/curriculum"
)

func registerTools(server *sdkmcp.Server, svc CurriculumService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_journeys",
		Description: "List curriculum journeys with their publication status and size",
	}, listJourneysHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_journey",
		Description: "Get one journey by slug with its levels, lessons and activity previews",
	}, getJourneyHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "resolve_level",
		Description: "Resolve the level shown for a journey given a requested level id, falling back to the first level",
	}, resolveLevelHandler(svc))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activity",
		Description: "Get one activity with its content, preview and the publication flags of every ancestor",
	}, getActivityHandler(svc))
}

func listJourneysHandler(svc CurriculumService) sdkmcp.ToolHandlerFor[ListJourneysParams, ListJourneysResponse] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ListJourneysParams) (*sdkmcp.CallToolResult, ListJourneysResponse, error) {
		journeys, err := svc.Journeys(ctx)
		if err != nil {
			return nil, ListJourneysResponse{}, toolError(err)
		}

		resp := ListJourneysResponse{Journeys: make([]JourneySummary, 0, len(journeys))}
		for _, j := range journeys {
			if input.PublishedOnly && !curriculum.IsVisibleToLearner(j) {
				continue
			}
			resp.Journeys = append(resp.Journeys, journeySummary(j))
		}
		return nil, resp, nil
	}
}

func getJourneyHandler(svc CurriculumService) sdkmcp.ToolHandlerFor[GetJourneyParams, JourneyResponse] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetJourneyParams) (*sdkmcp.CallToolResult, JourneyResponse, error) {
		j, err := lookupJourney(ctx, svc, input.Slug)
		if err != nil {
			return nil, JourneyResponse{}, err
		}
		return nil, journeyResponse(*j), nil
	}
}

func resolveLevelHandler(svc CurriculumService) sdkmcp.ToolHandlerFor[ResolveLevelParams, ResolveLevelResponse] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ResolveLevelParams) (*sdkmcp.CallToolResult, ResolveLevelResponse, error) {
		j, err := lookupJourney(ctx, svc, input.Slug)
		if err != nil {
			return nil, ResolveLevelResponse{}, err
		}

		resp := ResolveLevelResponse{
			JourneySlug:      j.Slug,
			RequestedLevelID: input.LevelID,
		}
		level, ok := curriculum.ResolveActiveLevel(*j, input.LevelID)
		if !ok {
			return nil, resp, nil
		}
		lr := levelResponse(level)
		resp.Selected = true
		resp.FellBack = level.ID != input.LevelID
		resp.Level = &lr
		return nil, resp, nil
	}
}

func getActivityHandler(svc CurriculumService) sdkmcp.ToolHandlerFor[GetActivityParams, ActivityResponse] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input GetActivityParams) (*sdkmcp.CallToolResult, ActivityResponse, error) {
		if input.ID <= 0 {
			return nil, ActivityResponse{}, toolError(fmt.Errorf("%w: id must be positive", ErrInvalidInput))
		}

		idx, err := svc.Tree(ctx)
		if err != nil {
			return nil, ActivityResponse{}, toolError(err)
		}
		path, ok := idx.Path(input.ID)
		if !ok {
			return nil, ActivityResponse{}, toolError(fmt.Errorf("%w: %d", ErrActivityNotFound, input.ID))
		}
		return nil, activityResponse(path), nil
	}
}

func lookupJourney(ctx context.Context, svc CurriculumService, slug string) (*curriculum.Journey, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, toolError(fmt.Errorf("%w: slug is required", ErrInvalidInput))
	}
	j, err := svc.JourneyBySlug(ctx, slug)
	if err != nil {
		return nil, toolError(err)
	}
	return j, nil
}
