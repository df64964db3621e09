// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package screen

import (
	"slices"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"goway/destination"
	"goway/venue"
	"goway/views/view"
)

type screenContent struct {
	title   string
	header  string
	body    []string
	entries []Entry
}

const topRatedCount = 3

var titleCaser = cases.Title(language.English)

func categoryTitle(k destination.Kind) string {
	return titleCaser.String(string(k))
}

func homeContent(catalog *venue.Static) screenContent {
	c := screenContent{
		title:  "home",
		header: printer.Sprintf("%d buildings, %d places", len(catalog.AllBuildings()), len(catalog.AllVendors())),
	}

	c.entries = append(c.entries, Entry{Label: "Search", Detail: "find a building or a place", Dest: destination.Search()})
	for _, k := range destination.Categories {
		c.entries = append(c.entries, Entry{Label: categoryTitle(k), Detail: "category", Dest: destination.Category(k)})
	}

	vendors := catalog.AllVendors()
	if len(vendors) > 0 {
		best := slices.MaxFunc(vendors, func(a, b venue.Vendor) int {
			switch {
			case a.Rating < b.Rating:
				return -1
			case a.Rating > b.Rating:
				return 1
			}
			return 0
		})
		c.entries = append(c.entries, Entry{
			Label:  "★ " + best.Name,
			Detail: "recommended",
			Rating: best.Rating,
			Dest:   destination.VendorDetail(best, destination.Recommended(true)),
		})
	}

	buildings := catalog.AllBuildings()
	sort.SliceStable(buildings, func(i, j int) bool { return buildings[i].Rating > buildings[j].Rating })
	for _, b := range buildings[:min(topRatedCount, len(buildings))] {
		c.entries = append(c.entries, Entry{Label: b.Name, Detail: "top rated", Rating: b.Rating, Dest: destination.BuildingDetail(b)})
	}
	return c
}

func content(catalog *venue.Static, d destination.Destination, query string) screenContent {
	switch d.Kind {
	case destination.KindSearch:
		return searchContent(catalog, query)
	case destination.KindOffice:
		return officeContent(catalog)
	case destination.KindVendorDetail:
		return vendorContent(catalog, d)
	case destination.KindBuildingDetail:
		return buildingContent(catalog, d)
	case destination.KindAROnboarding:
		return arOnboardingContent(catalog, d)
	case destination.KindARNavigation:
		return arNavigationContent(catalog, d)
	case destination.KindStepNavigation:
		return stepsContent(catalog, d)
	}
	if t, ok := destination.VendorTypeOf(d.Kind); ok {
		return categoryContent(catalog, d, t)
	}
	return missing(d, "unknown screen")
}

func missing(d destination.Destination, why string) screenContent {
	return screenContent{title: view.NameMissing, header: why}
}

func categoryContent(catalog *venue.Static, d destination.Destination, t venue.VendorType) screenContent {
	byBuilding := catalog.VendorsByType(t)

	c := screenContent{title: categoryTitle(d.Kind)}
	count := 0
	for _, b := range catalog.AllBuildings() {
		for _, v := range byBuilding[b.Name] {
			c.entries = append(c.entries, Entry{
				Label:  v.Name,
				Detail: b.Name,
				Rating: v.Rating,
				Dest:   destination.VendorDetail(v, destination.Recommended(false)),
			})
			count++
		}
	}
	c.header = printer.Sprintf("%d places in %d buildings", count, len(byBuilding))
	return c
}

func officeContent(catalog *venue.Static) screenContent {
	buildings := catalog.AllBuildings()
	c := screenContent{
		title:  categoryTitle(destination.KindOffice),
		header: printer.Sprintf("%d buildings", len(buildings)),
	}
	for _, b := range buildings {
		c.entries = append(c.entries, Entry{
			Label:  b.Name,
			Detail: printer.Sprintf("%d places", len(b.Vendors)),
			Rating: b.Rating,
			Dest:   destination.BuildingDetail(b),
		})
	}
	return c
}

func searchContent(catalog *venue.Static, query string) screenContent {
	c := screenContent{title: "search"}
	if query == "" {
		c.header = "type :search <query> or press / to filter"
		for _, b := range catalog.AllBuildings() {
			c.entries = append(c.entries, Entry{Label: b.Name, Detail: "building", Rating: b.Rating, Dest: destination.BuildingDetail(b)})
		}
		for _, v := range catalog.AllVendors() {
			c.entries = append(c.entries, Entry{Label: v.Name, Detail: v.Type.Description(), Rating: v.Rating, Dest: destination.VendorDetail(v, nil)})
		}
		return c
	}

	res := catalog.Search(query)
	c.header = printer.Sprintf("%d results for %q", res.Total(), query)
	for _, b := range res.Buildings {
		c.entries = append(c.entries, Entry{Label: b.Name, Detail: "building", Rating: b.Rating, Dest: destination.BuildingDetail(b)})
	}
	for _, r := range res.Vendors {
		c.entries = append(c.entries, Entry{
			Label:  r.Vendor.Name,
			Detail: r.Vendor.Type.Description() + " · " + r.BuildingName,
			Rating: r.Vendor.Rating,
			Dest:   destination.VendorDetail(r.Vendor, nil),
		})
	}
	return c
}

func vendorContent(catalog *venue.Static, d destination.Destination) screenContent {
	v, ok := catalog.FindVendor(d.VendorID)
	if !ok {
		return missing(d, "this place is no longer listed")
	}
	b, _ := catalog.FindBuilding(v.BuildingID)

	c := screenContent{
		title:  v.Name,
		header: printer.Sprintf("%s · %s · rated %.1f", v.Type.Description(), b.Name, v.Rating),
	}
	if d.IsRecommended != nil && *d.IsRecommended {
		c.body = append(c.body, "★ Recommended for you")
	}
	for _, item := range v.Items {
		c.body = append(c.body, "• "+item)
	}

	c.entries = append(c.entries, Entry{Label: "AR directions", Detail: "camera guided route", Dest: destination.AROnboarding(v)})
	if len(v.Steps) > 0 {
		c.entries = append(c.entries, Entry{
			Label:  "Step by step",
			Detail: printer.Sprintf("%d steps", len(v.Steps)),
			Dest:   destination.StepNavigation(v),
		})
	}
	if b.ID != "" {
		c.entries = append(c.entries, Entry{Label: b.Name, Detail: "building", Rating: b.Rating, Dest: destination.BuildingDetail(b)})
	}
	return c
}

func buildingContent(catalog *venue.Static, d destination.Destination) screenContent {
	b, ok := catalog.FindBuilding(d.BuildingID)
	if !ok {
		return missing(d, "this building is no longer listed")
	}

	c := screenContent{
		title:  b.Name,
		header: printer.Sprintf("%d places · rated %.1f · %.5f, %.5f", len(b.Vendors), b.Rating, b.Latitude, b.Longitude),
	}
	for _, v := range b.Vendors {
		c.entries = append(c.entries, Entry{
			Label:  v.Name,
			Detail: v.Type.Description(),
			Rating: v.Rating,
			Dest:   destination.VendorDetail(v, nil),
		})
	}
	return c
}

func arOnboardingContent(catalog *venue.Static, d destination.Destination) screenContent {
	v, ok := catalog.FindVendor(d.VendorID)
	if !ok {
		return missing(d, "this place is no longer listed")
	}
	return screenContent{
		title:  "AR onboarding",
		header: "Directions to " + v.Name,
		body: []string{
			"1. Hold your phone upright at chest height.",
			"2. Scan the floor slowly until the arrow appears.",
			"3. Follow the arrow; it updates as you walk.",
		},
		entries: []Entry{{Label: "Start AR navigation", Detail: v.Name, Dest: destination.ARNavigation(v), Replace: true}},
	}
}

func arNavigationContent(catalog *venue.Static, d destination.Destination) screenContent {
	v, ok := catalog.FindVendor(d.VendorID)
	if !ok {
		return missing(d, "this place is no longer listed")
	}
	c := screenContent{
		title:  "AR navigation",
		header: "Navigating to " + v.Name,
		body:   []string{"The camera view is not available in a terminal."},
	}
	if len(v.Steps) > 0 {
		c.entries = append(c.entries, Entry{Label: "Show steps instead", Detail: v.Name, Dest: destination.StepNavigation(v), Replace: true})
	}
	c.entries = append(c.entries, Entry{Label: "How does AR work?", Detail: "onboarding", Dest: destination.AROnboarding(v)})
	return c
}

func stepsContent(catalog *venue.Static, d destination.Destination) screenContent {
	v, ok := catalog.FindVendor(d.VendorID)
	if !ok {
		return missing(d, "this place is no longer listed")
	}
	c := screenContent{
		title:  "steps",
		header: printer.Sprintf("%d steps to %s", len(v.Steps), v.Name),
	}
	for i, st := range v.Steps {
		c.body = append(c.body, printer.Sprintf("%2d. %s", i+1, st.Description))
	}
	return c
}
