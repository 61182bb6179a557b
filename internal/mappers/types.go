package mappers

// Built-in entry types. Each has a registered field mapper.
const (
	EntryTypeMedicalProfessional = "medical_professional"
	EntryTypePharmaceutical      = "pharmaceutical"
	EntryTypeProduct             = "product"
	EntryTypeContact             = "contact"
	EntryTypeDepartment          = "department"
	EntryTypeService             = "service"
	EntryTypeLocation            = "location"
	EntryTypeFAQ                 = "faq"
	EntryTypeCrossSell           = "cross_sell"
	EntryTypeUpSell              = "up_sell"
	EntryTypeCompetitiveSell     = "competitive_sell"
	EntryTypeClassSeminar        = "class_seminar"
	EntryTypeExpertConsultant    = "expert_consultant"
)
