package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/AnatoleLucet/list"
	"github.com/AnatoleLucet/list/internal/render"
	"github.com/AnatoleLucet/list/internal/script"
)

func main() {
	scriptPath := flag.String("script", "", "YAML file of list operations to replay")
	tree := flag.Bool("tree", false, "Render the final list as a tree")
	flag.Parse()

	l := list.New[int]()
	fmt.Println(l.Size())

	if *scriptPath == "" {
		return
	}

	s, err := script.Load(*scriptPath)
	if err != nil {
		log.Fatalf("failed to load script: %v", err)
	}

	results, err := s.Run(l)
	if err != nil {
		log.Fatalf("failed to run script: %v", err)
	}

	for i, res := range results {
		switch {
		case res.Err != nil:
			log.Printf("step %d %s: %v", i, res.Op, res.Err)
		case res.HasValue:
			fmt.Printf("%s = %d\n", res.Op, res.Value)
		}
	}

	fmt.Println(l)

	if *tree {
		fmt.Print(render.Tree(l))
	}
}
