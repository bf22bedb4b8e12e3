// Package localstore implementa el sustrato clave/valor local y los
// adaptadores de persistencia de cada familia de registros.
//
// El medio es un archivo SQLite con una sola tabla kv(clave, valor JSON).
// SQLite admite un solo escritor a la vez; el Store refuerza esa política con
// SetMaxOpenConns(1) y un mutex propio que serializa toda operación, de modo
// que los ciclos leer-modificar-escribir de los repositorios no sufran
// lost updates cuando el servidor HTTP atiende peticiones concurrentes.
package localstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/caja-pos/internal/domain"
)

// Claves lógicas del almacén. La sesión es transitoria: no entra en respaldos.
const (
	KeyUsers    = "pos_users"
	KeyProducts = "pos_products"
	KeySales    = "pos_sales"
	KeySettings = "pos_settings"
	KeySession  = "pos_session"
)

// KV contrato del sustrato: lecturas de clave ausente o corrupta devuelven
// ok=false sin error; los fallos del medio se reportan envueltos en
// domain.ErrStorage. WithLock ejecuta fn con el almacén bloqueado para
// componer varias operaciones de forma atómica.
type KV interface {
	Get(key string, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
	Remove(key string) error
	Clear() error
	WithLock(fn func(kv KV) error) error
}

var _ KV = (*Store)(nil)

// Store sustrato clave/valor sobre un archivo SQLite.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open abre (o crea) el archivo del almacén y prepara la tabla kv.
// Pragmas: WAL para lecturas durante escrituras, busy_timeout para contención
// y synchronous NORMAL como balance durabilidad/latencia. Idempotente.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %q: %v", domain.ErrStorage, path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: conectar %q: %v", domain.ErrStorage, path, err)
	}

	// SQLite permite un único escritor; una sola conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA synchronous = NORMAL`,
		`PRAGMA busy_timeout = 5000`,
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: aplicar pragma: %v", domain.ErrStorage, err)
		}
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		clave TEXT PRIMARY KEY,
		valor TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: crear esquema: %v", domain.ErrStorage, err)
	}

	return &Store{db: db}, nil
}

// Close cierra la conexión al archivo.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get deserializa el valor de key en dest. Devuelve false si la clave no
// existe o si el valor guardado ya no es deserializable (se lee como ausente).
func (s *Store) Get(key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key, dest)
}

// Set serializa value como JSON y lo guarda bajo key (upsert).
func (s *Store) Set(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, value)
}

// Remove elimina la clave. Quitar una clave inexistente no es error.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(key)
}

// Clear vacía el almacén completo.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear()
}

// WithLock ejecuta fn con el mutex tomado; el KV que recibe fn opera sin
// volver a bloquear. Es la cola de escritor único de los repositorios.
func (s *Store) WithLock(fn func(kv KV) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(lockedView{s})
}

func (s *Store) get(key string, dest interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT valor FROM kv WHERE clave = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: leer %q: %v", domain.ErrStorage, key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Valor corrupto: se trata como clave ausente, no como fallo fatal.
		return false, nil
	}
	return true, nil
}

func (s *Store) set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (clave, valor) VALUES (?, ?)
		 ON CONFLICT(clave) DO UPDATE SET valor = excluded.valor`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: guardar %q: %v", domain.ErrStorage, key, err)
	}
	return nil
}

func (s *Store) remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE clave = ?`, key); err != nil {
		return fmt.Errorf("%w: eliminar %q: %v", domain.ErrStorage, key, err)
	}
	return nil
}

func (s *Store) clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		return fmt.Errorf("%w: vaciar almacén: %v", domain.ErrStorage, err)
	}
	return nil
}

// lockedView es el KV que ve el callback de WithLock: mismas operaciones sin
// re-bloquear, y un WithLock que ejecuta directo (el lock ya está tomado).
type lockedView struct {
	s *Store
}

var _ KV = lockedView{}

func (v lockedView) Get(key string, dest interface{}) (bool, error) { return v.s.get(key, dest) }
func (v lockedView) Set(key string, value interface{}) error        { return v.s.set(key, value) }
func (v lockedView) Remove(key string) error                        { return v.s.remove(key) }
func (v lockedView) Clear() error                                   { return v.s.clear() }
func (v lockedView) WithLock(fn func(kv KV) error) error            { return fn(v) }
