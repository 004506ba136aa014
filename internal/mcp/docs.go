package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `curriculum serves a read-only view of a language-learning curriculum: Journeys → Levels → Lessons → Activities.

Core concepts:
- Journey: a course, addressed by its slug.
- Level, Lesson, Activity: ordered children; every node has a numeric id unique across all kinds.
- Activity types: VIDEO, READING, QUIZ, SPEAKING. Each carries its own content payload.
- Publication: every node has its own published flag. Flags do not cascade.

Workflow:
1) list_journeys to find slugs.
2) get_journey for the tree with one-line activity previews.
3) resolve_level to see which level an admin view would show for a requested level id.
4) get_activity for full content and the flags of every ancestor.

Docs:
- curriculum://docs/index
- curriculum://docs/publication
- curriculum://docs/activity-types
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "curriculum://docs/index",
		Name:        "docs_index",
		Title:       "curriculum docs index",
		Description: "Entry point: the content tree, the tools, and which doc to read next.",
		Content: `# curriculum: Docs Index

## Content tree

Journey → Level → Lesson → Activity. Children are sorted by ` + "`order`" + ` (1-based). Every node has an integer id drawn from one sequence, so an id names exactly one node of one kind.

## Tools

- ` + "`list_journeys`" + ` (optional ` + "`published_only`" + `)
- ` + "`get_journey`" + ` (` + "`slug`" + `)
- ` + "`resolve_level`" + ` (` + "`slug`" + `, optional ` + "`level_id`" + `)
- ` + "`get_activity`" + ` (` + "`id`" + `)

## Docs

- ` + "`curriculum://docs/publication`" + ` - draft/published rules.
- ` + "`curriculum://docs/activity-types`" + ` - payload fields and previews.

The server is read-only. Content is loaded by the seed command.
`,
	},
	{
		URI:         "curriculum://docs/publication",
		Name:        "docs_publication",
		Title:       "Publication model",
		Description: "How draft and published flags combine along a journey.",
		Content: `# Publication model

Each Journey, Level, Lesson and Activity has its own ` + "`published`" + ` flag, shown as a Published or Draft badge.

## Flags are independent

A draft level may contain published lessons, and a draft journey may contain published levels. The server reports each node's own flag and never derives one from its parent.

` + "`get_activity`" + ` returns ` + "`flags`" + ` with the journey, level, lesson and activity flags side by side. ` + "`live_for_learners`" + ` is true only when all four are published; treat that as the learner-facing check.

## Level selection

` + "`resolve_level`" + ` returns the requested level when it belongs to the journey. A missing id, an id of another journey, or an id of a different node kind falls back to the journey's first level, and ` + "`fell_back`" + ` is set. A journey with no levels is not an error: ` + "`selected`" + ` is false and ` + "`level`" + ` is omitted.
`,
	},
	{
		URI:         "curriculum://docs/activity-types",
		Name:        "docs_activity_types",
		Title:       "Activity types",
		Description: "Content fields per activity type and how previews are built.",
		Content: `# Activity types

| Type | Required | Optional | Preview |
|---|---|---|---|
| VIDEO | videoUrl | transcript, durationSeconds | the URL, else "Video" |
| READING | passageText | vocabulary, questions | first 50 characters + "...", else "Reading" |
| QUIZ | question, options (2+), correctIndex | | the question, else "Quiz" |
| SPEAKING | promptText | sampleAnswer | first 50 characters + "...", else "Speaking" |

READING and SPEAKING previews always end in "...", even when the text is shorter than 50 characters.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
