package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntityRepository interface {
	FindAll() ([]model.Entity, error)
	FindAllWithDeleted() ([]model.Entity, error)
	FindByID(id uuid.UUID) (*model.Entity, error)
	Create(entity *model.Entity) error
	Update(entity *model.Entity) error
	Delete(id uuid.UUID, hard bool) error
	Restore(id uuid.UUID) error
	ReplaceTags(entity *model.Entity, tags []model.Tag) error
	UpdateContact(contact *model.ContactInfo, phones []model.ContactNumber, replacePhones bool) error

	// Entity types
	FindAllTypes() ([]model.EntityType, error)
	FindTypeByID(id uuid.UUID) (*model.EntityType, error)
	CreateType(t *model.EntityType) error

	// Tags
	FindAllTags() ([]model.Tag, error)
	CreateTag(tag *model.Tag) error
}

type entityRepo struct {
	db *gorm.DB
}

func NewEntityRepo(db *gorm.DB) EntityRepository {
	return &entityRepo{db}
}

func (r *entityRepo) FindAll() ([]model.Entity, error) {
	var entities []model.Entity
	err := Active(r.db).
		Preload("EntityType").Preload("ContactInfo").Preload("ContactInfo.PhoneNumbers").
		Preload("Roles").Preload("Tags").
		Find(&entities).Error
	return entities, err
}

func (r *entityRepo) FindAllWithDeleted() ([]model.Entity, error) {
	var entities []model.Entity
	err := WithDeleted(r.db).
		Preload("EntityType").Preload("ContactInfo").
		Find(&entities).Error
	return entities, err
}

func (r *entityRepo) FindByID(id uuid.UUID) (*model.Entity, error) {
	var entity model.Entity
	err := Active(r.db).
		Preload("EntityType").Preload("ContactInfo").Preload("ContactInfo.PhoneNumbers").
		Preload("Roles").Preload("Tags").
		First(&entity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Create stores the entity together with its contact info in one
// transaction: an entity never exists without its contact record.
func (r *entityRepo) Create(entity *model.Entity) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if entity.ContactInfo != nil {
			if err := tx.Create(entity.ContactInfo).Error; err != nil {
				return err
			}
			entity.ContactID = entity.ContactInfo.ID
		}
		return tx.Omit("ContactInfo", "Roles", "Tags").Create(entity).Error
	})
}

func (r *entityRepo) Update(entity *model.Entity) error {
	return r.db.Omit("ContactInfo", "Roles", "Tags").Save(entity).Error
}

// Delete removes the entity and, on the hard path, its contact info in the
// same transaction (exclusive ownership: they go together).
func (r *entityRepo) Delete(id uuid.UUID, hard bool) error {
	if !hard {
		return markDeleted(r.db, &model.Entity{}, id)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entity model.Entity
		if err := WithDeleted(tx).First(&entity, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Entity{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ContactInfo{}, "id = ?", entity.ContactID).Error
	})
}

func (r *entityRepo) Restore(id uuid.UUID) error {
	return restore(r.db, &model.Entity{}, id)
}

func (r *entityRepo) ReplaceTags(entity *model.Entity, tags []model.Tag) error {
	return r.db.Model(entity).Association("Tags").Replace(tags)
}

// UpdateContact saves the contact record and, when replacePhones is set,
// swaps the full phone number list in the same transaction.
func (r *entityRepo) UpdateContact(contact *model.ContactInfo, phones []model.ContactNumber, replacePhones bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("PhoneNumbers").Save(contact).Error; err != nil {
			return err
		}
		if !replacePhones {
			return nil
		}
		for i := range phones {
			if err := tx.Create(&phones[i]).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(contact).Association("PhoneNumbers").Replace(phones); err != nil {
			return err
		}
		contact.PhoneNumbers = phones
		return nil
	})
}

func (r *entityRepo) FindAllTypes() ([]model.EntityType, error) {
	var types []model.EntityType
	err := Active(r.db).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *entityRepo) FindTypeByID(id uuid.UUID) (*model.EntityType, error) {
	var t model.EntityType
	if err := Active(r.db).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *entityRepo) CreateType(t *model.EntityType) error {
	return r.db.Create(t).Error
}

func (r *entityRepo) FindAllTags() ([]model.Tag, error) {
	var tags []model.Tag
	err := Active(r.db).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *entityRepo) CreateTag(tag *model.Tag) error {
	return r.db.Create(tag).Error
}
