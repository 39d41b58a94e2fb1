package photo

import (
	"sort"
	"strings"
	"time"

	"ridejournal/internal/domain/record"
)

type Photo struct {
	ID           string     `json:"id"`
	Filename     string     `json:"filename" doc:"Имя файла в каталоге uploads"`
	OriginalName string     `json:"originalName"`
	URL          string     `json:"url" doc:"Пусто, пока фото не загружено на сервер"`
	Size         int64      `json:"size"`
	MimeType     string     `json:"mimeType"`
	UploadedAt   time.Time  `json:"uploadedAt"`
	DateTaken    time.Time  `json:"dateTaken"`
	Description  string     `json:"description"`
	Tags         []string   `json:"tags"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	Data         []byte     `json:"data,omitempty" doc:"Содержимое файла, пока фото не загружено на сервер"`
}

func (p Photo) RecordID() string {
	return p.ID
}

func (p Photo) Validate() error {
	var verr record.ValidationError
	if strings.TrimSpace(p.OriginalName) == "" {
		verr.Add("originalName", "обязательное поле")
	}
	if !isImage(p.MimeType) {
		verr.Add("mimeType", "разрешены только изображения")
	}
	if p.DateTaken.IsZero() {
		verr.Add("dateTaken", "обязательное поле")
	}
	return verr.OrNil()
}

// Revise меняет только метаданные: файл, размер и дата загрузки берутся из original
func (p Photo) Revise(original Photo, now time.Time) Photo {
	next := original
	next.DateTaken = p.DateTaken
	if next.DateTaken.IsZero() {
		next.DateTaken = original.DateTaken
	}
	next.Description = p.Description
	next.Tags = NormalizeTags(p.Tags)
	next.UpdatedAt = &now
	return next
}

// Year - год съемки, по нему фильтруется лента
func (p Photo) Year() int {
	return p.DateTaken.Year()
}

// Draft - новая фотография вместе с содержимым файла (base64 на проводе)
type Draft struct {
	OriginalName string     `json:"originalName,omitempty" doc:"Исходное имя файла"`
	MimeType     string     `json:"mimeType,omitempty" doc:"MIME-тип, image/*"`
	Data         []byte     `json:"data,omitempty" doc:"Содержимое файла"`
	DateTaken    *time.Time `json:"dateTaken,omitempty" doc:"Дата съемки, по умолчанию время загрузки"`
	Description  string     `json:"description,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
}

func (d Draft) Validate() error {
	var verr record.ValidationError
	if strings.TrimSpace(d.OriginalName) == "" {
		verr.Add("originalName", "обязательное поле")
	}
	if len(d.Data) == 0 {
		verr.Add("data", "файл пуст")
	}
	if !isImage(d.MimeType) {
		verr.Add("mimeType", "разрешены только изображения")
	}
	return verr.OrNil()
}

// Build собирает фотографию вместе с содержимым файла. Filename и URL заполняет сервер.
func (d Draft) Build(id string, now time.Time) Photo {
	taken := now
	if d.DateTaken != nil && !d.DateTaken.IsZero() {
		taken = *d.DateTaken
	}
	return Photo{
		ID:           id,
		OriginalName: d.OriginalName,
		Size:         int64(len(d.Data)),
		MimeType:     d.MimeType,
		UploadedAt:   now,
		DateTaken:    taken,
		Description:  d.Description,
		Tags:         NormalizeTags(d.Tags),
		Data:         append([]byte(nil), d.Data...),
	}
}

type Patch struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	DateTaken   *time.Time `json:"dateTaken,omitempty"`
	Description *string    `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

func (p Patch) Apply(ph Photo) Photo {
	if p.DateTaken != nil {
		ph.DateTaken = *p.DateTaken
	}
	if p.Description != nil {
		ph.Description = *p.Description
	}
	if p.Tags != nil {
		ph.Tags = p.Tags
	}
	return ph
}

// NormalizeTags убирает пробелы, пустые значения и повторы; порядок первого появления сохраняется
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SplitTags разбирает строку вида "alps, climb" из формы или флага CLI
func SplitTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}

// FilterByYear оставляет фотографии, снятые в указанном году
func FilterByYear(photos []Photo, year int) []Photo {
	out := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if p.Year() == year {
			out = append(out, p)
		}
	}
	return out
}

// Years - годы съемки без повторов, новые первыми
func Years(photos []Photo) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, p := range photos {
		y := p.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func isImage(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}
