package seeder

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"mergington-api/src/models"

	"gopkg.in/yaml.v3"
)

//go:embed activities.yaml
var defaultActivities []byte

type seedFile struct {
	Activities []models.Activity `yaml:"activities"`
}

// LoadActivities อ่านข้อมูลกิจกรรมตั้งต้น
// ถ้า path ว่างจะใช้ชุดข้อมูลที่ฝังมากับ binary
func LoadActivities(path string) ([]models.Activity, error) {
	if path == "" {
		return DecodeActivities(bytes.NewReader(defaultActivities))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	return DecodeActivities(f)
}

// DecodeActivities แปลง YAML เป็นรายการกิจกรรม (ตรวจความถูกต้องตอนเพิ่มเข้า registry)
func DecodeActivities(r io.Reader) ([]models.Activity, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}
	if len(file.Activities) == 0 {
		return nil, fmt.Errorf("seed file has no activities")
	}
	return file.Activities, nil
}
