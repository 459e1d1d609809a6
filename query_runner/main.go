// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.
//
// Copyright 2025 Quarry Data, Inc.
//

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/quarrydata/quarry-go/logging"
	"github.com/quarrydata/quarry-go/quarry"
	"github.com/quarrydata/quarry-go/query"
)

func main() {
	var (
		table        = flag.String("table", "places", "Table to query.")
		search       = flag.String("search", "", "Full text search term.")
		field        = flag.String("field", "", "Field for a single row filter.")
		op           = flag.String("op", "$eq", "Row filter operator ($eq, $neq, $in, $bw, ...).")
		value        = flag.String("value", "", "Row filter operand.")
		limit        = flag.Int("limit", 0, "Maximum rows to return (0 uses the service default).")
		offset       = flag.Int("offset", 0, "Rows to skip (0 uses the service default).")
		includeCount = flag.Bool("include-count", false, "Ask the service for the total row count.")
		lat          = flag.Float64("lat", 0, "Latitude of the geo circle center.")
		lng          = flag.Float64("lng", 0, "Longitude of the geo circle center.")
		radius       = flag.Float64("radius", 0, "Geo circle radius in meters (0 disables the circle).")
		dryRun       = flag.Bool("dry-run", false, "Print the request URL instead of sending it.")
	)
	flag.Parse()

	godotenv.Load(".env")
	logger := logging.NewLogger("query-runner")

	q := query.New()
	if *search != "" {
		q.Search(*search)
	}
	if *limit > 0 {
		q.Limit(*limit)
	}
	if *offset > 0 {
		q.Offset(*offset)
	}
	if *includeCount {
		q.IncludeRowCount(true)
	}
	if *field != "" {
		var operand interface{} = *value
		if f, err := strconv.ParseFloat(*value, 64); err == nil {
			// numeric operands go out unquoted
			operand = f
		}
		q.Add(query.SimpleFilter{Field: *field, Op: query.Operator(*op), Value: operand})
	}
	if *radius > 0 {
		q.Within(query.NewCircle(*lat, *lng, *radius))
	}

	config := quarry.ConfigFromEnv()
	if *dryRun && config.APIKey == "" {
		config.APIKey = "dry-run" // never sent
	}
	client, err := quarry.NewClient(config)
	if err != nil {
		logger.Fatalf("Failed to create client: %v", err)
	}

	if *dryRun {
		url, err := client.RawQuery(*table, q)
		if err != nil {
			logger.Fatalf("Failed to encode query: %v", err)
		}
		fmt.Println(url)
		return
	}

	response, err := client.Fetch(context.Background(), *table, q)
	if err != nil {
		logger.Fatalf("Fetch failed: %v", err)
	}

	if total, ok := response.TotalCount(); ok {
		logger.Infof("Fetched %d of %d rows from %s", response.Count(), total, *table)
	} else {
		logger.Infof("Fetched %d rows from %s", response.Count(), *table)
	}
	for _, row := range response.Rows() {
		line, err := json.Marshal(row)
		if err != nil {
			logger.Fatalf("Failed to render row: %v", err)
		}
		fmt.Println(string(line))
	}
}
