package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Andy3189/async-opcua/pkg/logging"
	"github.com/Andy3189/async-opcua/pkg/metrics"
	"github.com/Andy3189/async-opcua/pkg/nodeset"
	"github.com/Andy3189/async-opcua/pkg/space"
)

func main() {
	optionsPath := flag.String("options", "", "YAML import options file")
	quiet := flag.Bool("quiet", false, "Suppress per-file output")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: nodeset-import [-options file.yaml] nodeset.xml [nodeset2.xml ...]")
		os.Exit(2)
	}

	opts := nodeset.DefaultOptions()
	if *optionsPath != "" {
		var err error
		opts, err = nodeset.LoadOptions(*optionsPath)
		if err != nil {
			fmt.Printf("❌ Failed to load options: %v\n", err)
			os.Exit(1)
		}
	}

	reg := metrics.NewRegistry()
	s := space.NewWithConfig(space.Config{
		Logger:  logging.NewJSONLogger(os.Stderr, logging.ParseLevel(os.Getenv("LOG_LEVEL"))),
		Metrics: reg,
	})

	importer, err := nodeset.NewImporter(s, opts)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	importer.SetMetrics(reg)

	for _, path := range files {
		report, err := importer.ImportFile(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			os.Exit(1)
		}
		if *quiet {
			continue
		}
		fmt.Printf("✅ %s\n", report.File)
		fmt.Printf("   Nodes:      %d created, %d skipped\n", report.NodesCreated, report.NodesSkipped)
		fmt.Printf("   References: %d created, %d skipped, %d deferred\n",
			report.RefsCreated, report.RefsSkipped, report.Deferred)
		for _, d := range report.Diagnostics {
			fmt.Printf("   ⚠️  [%s] %s\n", d.Stage, d.Message)
		}
		if report.Truncated() {
			fmt.Println("   ⚠️  diagnostics truncated")
		}
	}

	structural, err := importer.Finalize()
	if err != nil {
		fmt.Printf("❌ Finalize: %v\n", err)
		os.Exit(1)
	}
	if len(structural) > 0 {
		fmt.Printf("❌ Address space is inconsistent (%d structural errors)\n", len(structural))
		for _, e := range structural {
			fmt.Printf("   • %v\n", e)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ Address space finalized: %d nodes, %d references, %d namespaces\n",
		s.NodeCount(), s.ReferenceCount(), len(s.NamespaceURIs()))
}
