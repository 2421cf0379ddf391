package services

import (
	"encoding/json"
	"fmt"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"gorm.io/datatypes"
)

// snapshot/restore ของ draft ที่เข้าคิว moderation
// กติกา: restore(snapshot(D)) ต้องได้ field เท่าเดิมเป๊ะ รวมวันที่ (yyyy-mm-dd)

func snapshotJob(job *entity.Job) (datatypes.JSON, error) {
	b, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("serialize job draft: %w", err)
	}
	return datatypes.JSON(b), nil
}

func snapshotInternship(internship *entity.Internship) (datatypes.JSON, error) {
	b, err := json.Marshal(internship)
	if err != nil {
		return nil, fmt.Errorf("serialize internship draft: %w", err)
	}
	return datatypes.JSON(b), nil
}

func restoreJob(content datatypes.JSON) (*entity.Job, error) {
	var job entity.Job
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("deserialize job draft: %w", err)
	}
	return &job, nil
}

func restoreInternship(content datatypes.JSON) (*entity.Internship, error) {
	var internship entity.Internship
	if err := json.Unmarshal(content, &internship); err != nil {
		return nil, fmt.Errorf("deserialize internship draft: %w", err)
	}
	return &internship, nil
}
