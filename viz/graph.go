// ABOUTME: Contact and deal network graph generation
// ABOUTME: Produces graphviz DOT output and optional PNG rendering
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"pipecrm/store"
)

// GenerateDealGraph builds a contact→deal network graph. Deal nodes are
// boxes labelled with name and value; edges connect each deal to its
// contact. Dangling contact references show up as "Unknown Contact" nodes.
func GenerateDealGraph(ctx context.Context, s *store.Store) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	contactNodes := make(map[string]*cgraph.Node)
	for _, c := range s.Contacts() {
		node, err := graph.CreateNodeByName("contact-" + c.ID)
		if err != nil {
			return "", fmt.Errorf("create contact node: %w", err)
		}
		node.SetLabel(c.Name)
		contactNodes[c.ID] = node
	}

	for _, d := range s.Deals() {
		dealNode, err := graph.CreateNodeByName("deal-" + d.ID)
		if err != nil {
			return "", fmt.Errorf("create deal node: %w", err)
		}
		dealNode.SetLabel(fmt.Sprintf("%s\n$%.0f", d.Name, d.Value))
		dealNode.SetShape(cgraph.BoxShape)

		contactNode, ok := contactNodes[d.ContactID]
		if !ok {
			// Dangling reference; degrade like ContactName does.
			contactNode, err = graph.CreateNodeByName("contact-" + d.ContactID)
			if err != nil {
				return "", fmt.Errorf("create placeholder node: %w", err)
			}
			contactNode.SetLabel("Unknown Contact")
			contactNodes[d.ContactID] = contactNode
		}

		edge, err := graph.CreateEdgeByName("", contactNode, dealNode)
		if err != nil {
			return "", fmt.Errorf("create edge: %w", err)
		}
		edge.SetLabel(d.Stage)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("render graph: %w", err)
	}

	return buf.String(), nil
}

// RenderDealGraphPNG renders the contact→deal network straight to a PNG
// file.
func RenderDealGraphPNG(ctx context.Context, s *store.Store, path string) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("create graphviz instance: %w", err)
	}
	defer gv.Close()

	dot, err := GenerateDealGraph(ctx, s)
	if err != nil {
		return err
	}

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse graph: %w", err)
	}
	defer graph.Close()

	if err := gv.RenderFilename(ctx, graph, graphviz.PNG, path); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
