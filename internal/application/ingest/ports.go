package ingest

import "io"

// Upload один бінарний файл із батча завантаження. Медіа-тип уже перевірено
// на HTTP-рівні до виклику конвеєра.
type Upload struct {
	OriginalName string
	Content      io.Reader
}

// Normalizer порт нормалізації зображення: декодувати, вписати в цільові
// розміри, перекодувати у компактний формат. Повертає шлях нормалізованого
// файлу; оригінал не чіпає.
type Normalizer interface {
	Normalize(srcPath string) (string, error)
}

// AssetKind результат обробки одного файлу: або нормалізований файл, або
// деградація до оригіналу. Явний двоваріантний тип, щоб конструювання запису
// каталогу не могло забути розгалузитися.
type AssetKind int

const (
	// AssetConverted нормалізація вдалася, оригінал видалено.
	AssetConverted AssetKind = iota
	// AssetStoredRaw нормалізація не вдалася, активом лишився оригінал.
	AssetStoredRaw
)

// Asset актив запису каталогу: шлях файлу та як він отриманий.
type Asset struct {
	Kind AssetKind
	Path string // шлях у файловій системі під каталогом завантажень
}
