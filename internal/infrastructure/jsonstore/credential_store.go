package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/fotosvit/fotosvit-api/internal/domain/entity"
	"github.com/fotosvit/fotosvit-api/internal/domain/repository"
)

// credentialFile ім'я документа облікових даних адміністратора.
const credentialFile = "admin.json"

var _ repository.CredentialStore = (*FileCredentialStore)(nil)

// FileCredentialStore сховище облікових даних адміністратора поверх JSON-файлу.
// Файл — джерело істини при старті; після цього авторитетна копія в пам'яті,
// а кожен Set атомарно переписує файл, тому зміна пароля переживає рестарт.
type FileCredentialStore struct {
	path string

	mu   sync.RWMutex
	cred entity.AdminCredential
}

// NewFileCredentialStore відкриває сховище у dataDir. Якщо файлу немає,
// сіє його з seedEmail/seedPassword (пароль одразу хешується bcrypt).
func NewFileCredentialStore(dataDir, seedEmail, seedPassword string) (*FileCredentialStore, error) {
	s := &FileCredentialStore{path: filepath.Join(dataDir, credentialFile)}

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.cred); err != nil {
			return nil, fmt.Errorf("пошкоджений файл облікових даних %s: %w", s.path, err)
		}
		return s, nil
	case os.IsNotExist(err):
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.cred = entity.AdminCredential{Email: seedEmail, PasswordHash: string(hash)}
		if err := s.write(s.cred); err != nil {
			return nil, fmt.Errorf("посів облікових даних: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("читання %s: %w", s.path, err)
	}
}

// Get повертає поточні облікові дані з пам'яті.
func (s *FileCredentialStore) Get() entity.AdminCredential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred
}

// Set надійно оновлює облікові дані: спершу атомарний перезапис файлу,
// лише потім оновлення копії в пам'яті. При помилці запису стара копія
// лишається чинною.
func (s *FileCredentialStore) Set(cred entity.AdminCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(cred); err != nil {
		return err
	}
	s.cred = cred
	return nil
}

func (s *FileCredentialStore) write(cred entity.AdminCredential) error {
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "admin-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
