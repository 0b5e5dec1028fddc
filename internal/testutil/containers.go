// containers.go
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

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/floorsdb/data"
	"github.com/localnerve/floorsdb/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mysqlRootPassword = "rootpass"
	mysqlDatabase     = "floorsdb"
	mysqlAppUser      = "floor"
	mysqlAppPassword  = "floorpass"
)

// MySQLContainer is a disposable MySQL server and the config to reach it
type MySQLContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container
func (m *MySQLContainer) Terminate(ctx context.Context) {
	if m.Container == nil {
		return
	}
	if err := m.Container.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate MySQL container: %v", err)
	}
}

// StartMySQL starts a MySQL container, applies the embedded init SQL and
// returns a config pointing the application user at it
func StartMySQL(ctx context.Context, image string) (*MySQLContainer, error) {
	if image == "" {
		image = "mysql:8.4"
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": mysqlRootPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start MySQL: %w", err)
	}
	m := &MySQLContainer{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		m.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		m.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	if err := initMySQL(host, port.Port()); err != nil {
		m.Terminate(ctx)
		return nil, err
	}

	m.Config = &config.Config{
		Port:              "3000",
		DBType:            "mysql",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        mysqlDatabase,
		DBUser:            mysqlAppUser,
		DBPassword:        mysqlAppPassword,
		DBConnectionLimit: 5,
		DBLogLevel:        "warn",
		DBAutoMigrate:     true,
		BcryptCost:        4,
	}
	return m, nil
}

// initMySQL runs the embedded init script as root, retrying until the server accepts logins
func initMySQL(host, port string) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/?multiStatements=true", mysqlRootPassword, host, port))
	if err != nil {
		return fmt.Errorf("failed to open root connection: %w", err)
	}
	defer db.Close()

	for attempt := 0; ; attempt++ {
		if err = db.Ping(); err == nil {
			break
		}
		if attempt == 30 {
			return fmt.Errorf("MySQL did not accept connections: %w", err)
		}
		time.Sleep(time.Second)
	}

	script := strings.NewReplacer(
		"${DB_DATABASE}", mysqlDatabase,
		"${DB_USER}", mysqlAppUser,
		"${DB_PASSWORD}", mysqlAppPassword,
	).Replace(data.InitdbMySQL)

	if _, err := db.Exec(script); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}
