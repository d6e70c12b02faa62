package main

import (
	"errors"
	"fmt"
	"path/filepath"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/fileutil"
)

// ErrAlreadyInitialized rejects init over an existing config without --force.
var ErrAlreadyInitialized = errors.New("config file already exists (use --force to overwrite)")

const initConfigTemplate = `# Site metadata.
title: My Blog
description: ""
author: ""

# Appearance. Themes: default_light, default_dark.
# Body fonts: system, inter, manrope, space-grotesk, outfit, geist.
# Code fonts: system, jetbrains-mono, fira-code, geist-mono.
theme_light: default_light
theme_dark: default_dark
font_body: system
font_code: system

# Features.
show_toc: true
toc_min_headings: 3
show_date: true
show_reading_time: true
sort_by_update: false
max_posts_per_index_page: 0
tags_as_link: true

# "/" produces relative links so the output opens straight from disk.
base_url: /
`

const initSamplePost = `---
title: Hello, World
date: %s
tags:
  - meta
---

Welcome to your new blog. Edit this file, add more Markdown files next to
it, then run:

` + "```sh\nmdblog build\n```" + `

The generated site lands in the public/ directory.
`

// runInit scaffolds a new site directory.
func runInit(args []string, deps *Dependencies) error {
	flags, positional, err := parseInitFlags(args)
	if err != nil {
		return err
	}

	target := "."
	if len(positional) > 0 {
		target = positional[0]
	}

	configPath := filepath.Join(target, mdblog.ConfigFileName+".yml")
	if fileutil.FileExists(configPath) && !flags.force {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, configPath)
	}

	if err := fileutil.WriteFile(configPath, []byte(initConfigTemplate)); err != nil {
		return err
	}

	postPath := filepath.Join(target, "hello-world.md")
	if !fileutil.FileExists(postPath) {
		date := deps.Now().Format("2006-01-02")
		post := fmt.Sprintf(initSamplePost, date)
		if err := fileutil.WriteFile(postPath, []byte(post)); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "✓ site scaffolded in %s\n", target)
	fmt.Fprintln(deps.Stdout, "  edit mdblog.config.yml, then run 'mdblog build'")
	return nil
}
