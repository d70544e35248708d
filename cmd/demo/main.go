// Command demo surveys real SDK clients through the introspector and shows
// which operations a CRUD policy would expose as tools.
//
// No API calls are made; the SDK clients are only reflected over. Set
// ANTHROPIC_API_KEY, OPENAI_API_KEY, or GOOGLE_API_KEY (a .env file works)
// to include the corresponding SDK in the survey, and AUTOTOOL_CRUD_* to
// change the policy from its read-only default.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"github.com/spetersoncode/autotool/crud"
	"github.com/spetersoncode/autotool/introspect"
)

type target struct {
	label  string
	client any
}

func main() {
	godotenv.Load()
	ctx := context.Background()

	fmt.Println("autotool demo: CRUD filtering over SDK clients")
	fmt.Println()

	controls, err := crud.New(crud.FromEnv()...)
	if err != nil {
		log.Fatal(err)
	}
	printPolicy(controls)

	var targets []target

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		client := anthropic.NewClient(anthropicoption.WithAPIKey(key))
		targets = append(targets,
			target{"anthropic models", &client.Models},
			target{"anthropic messages", &client.Messages},
		)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client := openai.NewClient(openaioption.WithAPIKey(key))
		targets = append(targets,
			target{"openai models", &client.Models},
			target{"openai files", &client.Files},
		)
	}

	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Fatal(err)
		}
		targets = append(targets,
			target{"google models", client.Models},
			target{"google files", client.Files},
		)
	}

	if len(targets) == 0 {
		fmt.Println("No API keys found. Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GOOGLE_API_KEY.")
		return
	}

	for _, t := range targets {
		survey(controls, t)
	}
}

func printPolicy(controls *crud.Controls) {
	fmt.Println("Policy:")
	for _, v := range crud.Verbs() {
		state := "disabled"
		if controls.Enabled(v) {
			state = "enabled"
		}
		var rules []string
		for _, r := range controls.Rules(v) {
			rules = append(rules, fmt.Sprintf("%s (%s)", r.Raw(), r.Dialect()))
		}
		detail := "prefix default"
		if len(rules) > 0 {
			detail = strings.Join(rules, ", ")
		}
		fmt.Printf("  %-6s %-8s %s\n", v, state, detail)
	}
	fmt.Println()
}

func survey(controls *crud.Controls, t target) {
	names, err := introspect.OperationNames(t.client)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s:\n", t.label)
	for _, name := range names {
		verb, ok := crud.Classify(name)
		switch {
		case !ok:
			fmt.Printf("  - %-28s (unclassified)\n", name)
		case controls.IsPermitted(name):
			fmt.Printf("  + %-28s %s\n", name, verb)
		default:
			fmt.Printf("  - %-28s %s\n", name, verb)
		}
	}
	fmt.Println()
}
