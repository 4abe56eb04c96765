package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fotosvit/fotosvit-api/pkg/logger"
)

// Store сховище колекцій каталогу: кожна колекція — один JSON-документ із
// повною впорядкованою послідовністю записів. Жодних індексів чи запитів,
// лише читання/перезапис документа цілком.
//
// Пара Load→Save не атомарна: конкурентні мутації працюють за принципом
// "останній запис перемагає". Припущення — єдиний адміністратор; це
// задокументоване обмеження, а не дефект.
type Store struct {
	dir string
	log *logger.Logger
}

// NewStore створює сховище над каталогом dir.
func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// path шлях документа колекції.
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load читає колекцію у out (вказівник на слайс). Fail-soft: відсутній,
// нечитабельний чи пошкоджений документ дає порожню послідовність; викликач
// не розрізняє перший запуск і пошкодження.
func (s *Store) Load(name string, out any) {
	p := s.path(name)
	data, err := os.ReadFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("collection", name).Msg("не вдалося прочитати документ, віддаємо порожню колекцію")
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("пошкоджений документ, віддаємо порожню колекцію")
	}
}

// Save перезаписує документ колекції цілком. Атомарно з погляду читачів:
// запис у тимчасовий файл у тому ж каталозі, потім rename поверх документа.
// При помилці попередній документ лишається недоторканим.
func (s *Store) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	p := s.path(name)
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("temp file для %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("запис %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("закриття %s: %w", name, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// Exists чи існує документ колекції.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
