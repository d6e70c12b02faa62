package mdblog

import (
	"log/slog"
	"sort"
)

// SortItems orders items newest-first by their effective sort timestamp
// (see Item.SortKey). The sort is stable: items with equal timestamps keep
// their input order, which is the ordering guarantee — no secondary key is
// introduced. Undated items always sort last.
func SortItems(items []*Item, byUpdate bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey(byUpdate).Compare(items[j].SortKey(byUpdate)) > 0
	})
}

// TagGroup is one tag's bucket of items, in the order the items were given.
type TagGroup struct {
	Slug        string
	DisplayName string // as first seen in frontmatter; later casings merge in
	Items       []*Item
}

// GroupByTag buckets items by tag slug. Callers pass index-eligible items
// only; excluded items never enter any tag bucket. Distinct display names
// that slugify identically merge under the first-seen display name, with a
// warning so the merge is visible at build time. Groups come back sorted by
// slug for deterministic output.
func GroupByTag(items []*Item, logger *slog.Logger) []TagGroup {
	if logger == nil {
		logger = slog.Default()
	}

	bySlug := make(map[string]*TagGroup)
	member := make(map[string]map[*Item]bool) // slug -> items already bucketed
	order := make([]string, 0)

	for _, item := range items {
		for _, tag := range item.Tags {
			slug := Slugify(tag)
			group, ok := bySlug[slug]
			if !ok {
				group = &TagGroup{Slug: slug, DisplayName: tag}
				bySlug[slug] = group
				member[slug] = make(map[*Item]bool)
				order = append(order, slug)
			} else if group.DisplayName != tag {
				logger.Warn("tag names merge under one slug",
					"slug", slug, "kept", group.DisplayName, "merged", tag)
			}
			if member[slug][item] {
				continue // same item tagged twice with names that share a slug
			}
			member[slug][item] = true
			group.Items = append(group.Items, item)
		}
	}

	sort.Strings(order)
	groups := make([]TagGroup, 0, len(order))
	for _, slug := range order {
		groups = append(groups, *bySlug[slug])
	}
	return groups
}
