// main.go
//
// A factory floor management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of floorsdb.
// floorsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// floorsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with floorsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/localnerve/floorsdb/internal/config"
	"github.com/localnerve/floorsdb/internal/database"
	"github.com/localnerve/floorsdb/internal/services"
)

// healthcheck probes the configured database once. The exit status is what
// container orchestrators read; the JSON report is for people.
func main() {
	quiet := flag.Bool("q", false, "exit status only, no report")
	compact := flag.Bool("compact", false, "single line JSON report")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("floorsdb healthcheck: configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("floorsdb healthcheck: connect %s: %v", cfg.DBType, err)
	}
	result := services.HealthCheck(cfg, db)
	database.Close(db)

	if !*quiet {
		var report []byte
		if *compact {
			report, err = json.Marshal(result)
		} else {
			report, err = json.MarshalIndent(result, "", "  ")
		}
		if err != nil {
			log.Fatalf("floorsdb healthcheck: report: %v", err)
		}
		fmt.Println(string(report))
	}

	if !result.Healthy() {
		os.Exit(1)
	}
}
