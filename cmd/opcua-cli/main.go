package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/logging"
	"github.com/Andy3189/async-opcua/pkg/nodes"
	"github.com/Andy3189/async-opcua/pkg/nodeset"
	"github.com/Andy3189/async-opcua/pkg/space"
	"github.com/Andy3189/async-opcua/pkg/ua"
	"github.com/Andy3189/async-opcua/pkg/validation"
)

type CLI struct {
	space    *space.AddressSpace
	importer *nodeset.Importer
	scanner  *bufio.Scanner
}

func main() {
	flag.Parse()

	printBanner()

	s := space.NewWithConfig(space.Config{
		Logger: logging.NewJSONLogger(os.Stderr, logging.WarnLevel),
	})
	importer, err := nodeset.NewImporter(s, nodeset.DefaultOptions())
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	cli := &CLI{
		space:    s,
		importer: importer,
		scanner:  bufio.NewScanner(os.Stdin),
	}

	for _, path := range flag.Args() {
		cli.load(path)
	}

	fmt.Println("Type 'help' for available commands, 'exit' to quit")
	fmt.Println()

	cli.run()
}

func printBanner() {
	fmt.Println("OPC UA Address Space Explorer")
	fmt.Printf("Seeded base model ready\n\n")
}

func (cli *CLI) run() {
	for {
		fmt.Print("ua> ")

		if !cli.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(cli.scanner.Text())
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("👋 Goodbye!")
			break
		}

		cli.executeCommand(input)
		fmt.Println()
	}
}

func (cli *CLI) executeCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "help":
		cli.printHelp()
	case "load":
		if len(parts) < 2 {
			fmt.Println("usage: load <nodeset.xml> [more.xml ...]")
			return
		}
		if err := validation.ValidateBatchSize(len(parts) - 1); err != nil {
			fmt.Printf("❌ %v\n", err)
			return
		}
		for _, path := range parts[1:] {
			cli.load(path)
		}
	case "add":
		if len(parts) != 4 {
			fmt.Println("usage: add <node-id> <node-class> <browse-name>")
			return
		}
		cli.addNode(parts[1], parts[2], parts[3])
	case "link":
		if len(parts) < 4 || len(parts) > 5 {
			fmt.Println("usage: link <source-id> <type-id> <target-id> [inverse]")
			return
		}
		cli.addReference(parts[1:])
	case "node":
		if len(parts) != 2 {
			fmt.Println("usage: node <node-id>")
			return
		}
		cli.showNode(parts[1])
	case "refs":
		if len(parts) < 2 {
			fmt.Println("usage: refs <node-id> [reference-type-id]")
			return
		}
		cli.showRefs(parts[1:])
	case "subtypes":
		if len(parts) != 2 {
			fmt.Println("usage: subtypes <type-id>")
			return
		}
		cli.showSubtypes(parts[1])
	case "supertype":
		if len(parts) != 2 {
			fmt.Println("usage: supertype <type-id>")
			return
		}
		cli.showSupertype(parts[1])
	case "ns":
		for i, uri := range cli.space.NamespaceURIs() {
			fmt.Printf("  %d: %s\n", i, uri)
		}
	case "stats":
		fmt.Printf("  Nodes:      %d\n", cli.space.NodeCount())
		fmt.Printf("  References: %d\n", cli.space.ReferenceCount())
		fmt.Printf("  Namespaces: %d\n", len(cli.space.NamespaceURIs()))
	case "finalize":
		errs := cli.space.Finalize()
		if len(errs) == 0 {
			fmt.Println("✅ Address space is consistent")
			return
		}
		fmt.Printf("❌ %d structural errors:\n", len(errs))
		for _, e := range errs {
			fmt.Printf("  • %v\n", e)
		}
	default:
		fmt.Printf("unknown command %q, try 'help'\n", parts[0])
	}
}

func (cli *CLI) load(path string) {
	report, err := cli.importer.ImportFile(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Printf("✅ %s: %d nodes, %d references, %d diagnostics\n",
		report.File, report.NodesCreated, report.RefsCreated, len(report.Diagnostics))
}

func (cli *CLI) addNode(idStr, class, browseName string) {
	req := &validation.NodeRequest{NodeID: idStr, NodeClass: class, BrowseName: browseName}
	if err := validation.ValidateNodeRequest(req); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	n, err := buildNode(class, ua.MustParseNodeID(idStr), ua.ParseQualifiedName(browseName))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	if err := cli.space.InsertNode(n); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Printf("✅ %s %s added\n", class, n.NodeID())
}

func (cli *CLI) addReference(args []string) {
	req := &validation.ReferenceRequest{
		SourceID:      args[0],
		ReferenceType: args[1],
		TargetID:      args[2],
	}
	forward := true
	if len(args) == 4 {
		if args[3] != "inverse" {
			fmt.Println("usage: link <source-id> <type-id> <target-id> [inverse]")
			return
		}
		forward = false
		req.IsForward = &forward
	}
	if err := validation.ValidateReferenceRequest(req); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	ref := graph.Reference{
		Source:    ua.MustParseNodeID(req.SourceID),
		Target:    ua.MustParseNodeID(req.TargetID),
		Type:      ua.MustParseNodeID(req.ReferenceType),
		IsForward: forward,
	}
	if err := cli.space.InsertReference(ref, space.RefStrict); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Printf("✅ %s → %s (%s)\n", ref.Source, ref.Target, ref.Type)
}

func buildNode(class string, id ua.NodeID, bn ua.QualifiedName) (nodes.Node, error) {
	switch class {
	case "Object":
		return nodes.NewObject(id, bn).Build()
	case "Variable":
		return nodes.NewVariable(id, bn).Build()
	case "Method":
		return nodes.NewMethod(id, bn).Build()
	case "ObjectType":
		return nodes.NewObjectType(id, bn).Build()
	case "VariableType":
		return nodes.NewVariableType(id, bn).Build()
	case "ReferenceType":
		return nodes.NewReferenceType(id, bn).Build()
	case "DataType":
		return nodes.NewDataType(id, bn).Build()
	case "View":
		return nodes.NewView(id, bn).Build()
	}
	return nil, fmt.Errorf("unknown node class %q", class)
}

func (cli *CLI) parseID(s string) (ua.NodeID, bool) {
	if err := validation.ValidateNodeIDString(s); err != nil {
		fmt.Printf("❌ %v\n", err)
		return ua.NodeID{}, false
	}
	return ua.MustParseNodeID(s), true
}

func (cli *CLI) showNode(idStr string) {
	id, ok := cli.parseID(idStr)
	if !ok {
		return
	}
	n, ok := cli.space.GetNode(id)
	if !ok {
		fmt.Printf("node %s not found\n", id)
		return
	}
	fmt.Printf("  NodeId:      %s\n", n.NodeID())
	fmt.Printf("  NodeClass:   %s\n", n.NodeClass())
	fmt.Printf("  BrowseName:  %s\n", n.BrowseName())
	fmt.Printf("  DisplayName: %s\n", n.DisplayName().Text)
	if d := n.Description().Text; d != "" {
		fmt.Printf("  Description: %s\n", d)
	}
	if v, ok := n.(*nodes.VariableNode); ok {
		fmt.Printf("  DataType:    %s\n", v.DataType)
		fmt.Printf("  ValueRank:   %d\n", v.ValueRank)
	}
}

func (cli *CLI) showRefs(args []string) {
	id, ok := cli.parseID(args[0])
	if !ok {
		return
	}
	filter := graph.Filter{}
	if len(args) > 1 {
		typeID, ok := cli.parseID(args[1])
		if !ok {
			return
		}
		filter.Type = typeID
	}

	out := cli.space.References(id, filter)
	in := cli.space.ReferencesTo(id, filter)
	if len(out) == 0 && len(in) == 0 {
		fmt.Println("  no references")
		return
	}
	for _, r := range out {
		arrow := "→"
		if !r.IsForward {
			arrow = "←"
		}
		fmt.Printf("  %s %s %s (%s)\n", r.Source, arrow, r.Target, r.Type)
	}
	for _, r := range in {
		fmt.Printf("  incoming from %s (%s)\n", r.Source, r.Type)
	}
}

func (cli *CLI) showSubtypes(idStr string) {
	id, ok := cli.parseID(idStr)
	if !ok {
		return
	}
	ids, err := cli.space.SubtypesOf(id)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	for _, sub := range ids {
		name := ""
		if n, ok := cli.space.GetNode(sub); ok {
			name = n.BrowseName().Name
		}
		fmt.Printf("  %s %s\n", sub, name)
	}
}

func (cli *CLI) showSupertype(idStr string) {
	id, ok := cli.parseID(idStr)
	if !ok {
		return
	}
	super, ok := cli.space.SupertypeOf(id)
	if !ok {
		fmt.Println("  no supertype (hierarchy root)")
		return
	}
	fmt.Printf("  %s\n", super)
}

func (cli *CLI) printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  load <file> [more ...]     Import UANodeSet XML files")
	fmt.Println("  add <id> <class> <name>    Insert a node")
	fmt.Println("  link <src> <type> <dst> [inverse]")
	fmt.Println("                             Insert a reference (strict)")
	fmt.Println("  node <id>                  Show a node's attributes")
	fmt.Println("  refs <id> [type-id]        Show references of a node")
	fmt.Println("  subtypes <type-id>         List a type and its subtypes")
	fmt.Println("  supertype <type-id>        Show the direct supertype")
	fmt.Println("  ns                         List namespace URIs")
	fmt.Println("  stats                      Show address space counters")
	fmt.Println("  finalize                   Validate structural integrity")
	fmt.Println("  exit                       Quit")
}
