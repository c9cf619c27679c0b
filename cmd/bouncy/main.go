// Command bouncy is an interactive terminal demo of the bouncy label: a
// counter that can be stepped up and down, set silently, and reconfigured
// while it animates.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/phanxgames/bouncy"
)

//go:embed strings.yaml
var stringsYAML []byte

func main() {
	configPath := flag.String("config", "", "YAML label configuration")
	debug := flag.Bool("debug", false, "log transitions to stderr")
	flag.Parse()

	res, err := bouncy.LoadStringTable(stringsYAML)
	if err != nil {
		log.Fatalf("load strings: %v", err)
	}

	cfg := bouncy.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if cfg, err = bouncy.LoadConfig(data); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	m, err := newModel(cfg, res)
	if err != nil {
		log.Fatalf("create label: %v", err)
	}
	m.label.SetDebugMode(*debug)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bouncy: %v\n", err)
		os.Exit(1)
	}
}
