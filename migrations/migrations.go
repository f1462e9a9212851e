// Пакет migrations встраивает SQL-миграции в бинарник,
// чтобы схема накатывалась при старте без внешнего goose CLI.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
