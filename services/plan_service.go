package services

import (
	"errors"

	"github.com/Bhagwat-Patil/JobWebsite/entity"
	"github.com/Bhagwat-Patil/JobWebsite/repository"
	"gorm.io/gorm"
)

type PlanService struct {
	Repo *repository.PlanRepository
}

func NewPlanService(repo *repository.PlanRepository) *PlanService {
	return &PlanService{Repo: repo}
}

func (s *PlanService) Create(plan *entity.Plan) error {
	return s.Repo.Create(plan)
}

func (s *PlanService) GetByID(id uint) (*entity.Plan, error) {
	plan, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) List() ([]entity.Plan, error) {
	return s.Repo.FindAll()
}

func (s *PlanService) Update(id uint, plan *entity.Plan) (*entity.Plan, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if plan.Name != "" {
		existing.Name = plan.Name
	}
	if plan.Description != "" {
		existing.Description = plan.Description
	}
	if plan.Price > 0 {
		existing.Price = plan.Price
	}
	if plan.Duration != "" {
		existing.Duration = plan.Duration
	}
	if len(plan.Features) > 0 {
		existing.Features = plan.Features
	}

	if err := s.Repo.Save(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *PlanService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.DeleteByID(id)
}
