// AngelaMos | 2026
// schema.go

package core

import (
	"context"
	"fmt"
)

// schemaStatements is applied in order on startup. Every statement is
// idempotent, so a restart against an initialized database is a no-op.
//
// Delete semantics are deliberate and asymmetric: a deleted user takes
// fields, crops, and their child records with it (CASCADE), while a
// deleted field or crop only clears the reference on any damage claim
// (SET NULL) so the claim record survives its subject.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		user_type VARCHAR(20) NOT NULL CHECK (user_type IN ('farmer', 'government')),
		location TEXT,
		is_active BOOLEAN DEFAULT TRUE,
		email_verified BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP WITH TIME ZONE
	)`,

	`CREATE TABLE IF NOT EXISTS fields (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		field_name VARCHAR(255) NOT NULL,
		coordinates JSONB NOT NULL,
		area_hectares DECIMAL(10,4) NOT NULL,
		soil_type VARCHAR(100),
		elevation DECIMAL(8,2),
		slope_percentage DECIMAL(5,2),
		drainage_type VARCHAR(50),
		soil_nitrogen DECIMAL(8,3),
		soil_phosphorus DECIMAL(8,3),
		soil_potassium DECIMAL(8,3),
		soil_ph DECIMAL(4,2),
		organic_matter_percentage DECIMAL(5,2),
		soil_moisture_percentage DECIMAL(5,2),
		average_temperature DECIMAL(5,2),
		annual_rainfall DECIMAL(8,2),
		average_humidity DECIMAL(5,2),
		status VARCHAR(20) DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'deleted')),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS crops (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		field_id UUID NOT NULL REFERENCES fields(id) ON DELETE CASCADE,
		crop_name VARCHAR(100) NOT NULL,
		crop_variety VARCHAR(100),
		sowing_date DATE NOT NULL,
		expected_harvest_date DATE,
		actual_harvest_date DATE,
		sowing_nitrogen DECIMAL(8,3),
		sowing_phosphorus DECIMAL(8,3),
		sowing_potassium DECIMAL(8,3),
		sowing_ph DECIMAL(4,2),
		sowing_temperature DECIMAL(5,2),
		sowing_humidity DECIMAL(5,2),
		sowing_rainfall DECIMAL(8,2),
		sowing_soil_moisture DECIMAL(5,2),
		total_water_used DECIMAL(10,3) DEFAULT 0,
		irrigation_method VARCHAR(50) DEFAULT 'manual',
		total_nitrogen_applied DECIMAL(8,3) DEFAULT 0,
		total_phosphorus_applied DECIMAL(8,3) DEFAULT 0,
		total_potassium_applied DECIMAL(8,3) DEFAULT 0,
		current_stage VARCHAR(50) DEFAULT 'seeded',
		crop_status VARCHAR(20) DEFAULT 'active' CHECK (crop_status IN ('active', 'completed', 'failed', 'harvested')),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS crop_growth_stages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		crop_id UUID NOT NULL REFERENCES crops(id) ON DELETE CASCADE,
		stage_name VARCHAR(50) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE,
		duration_days INTEGER,
		kc_value DECIMAL(4,3),
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS irrigation_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		crop_id UUID NOT NULL REFERENCES crops(id) ON DELETE CASCADE,
		irrigation_date DATE NOT NULL,
		amount_mm DECIMAL(6,2) NOT NULL,
		irrigation_method VARCHAR(50) DEFAULT 'manual',
		duration_minutes INTEGER,
		notes TEXT,
		recorded_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS fertilizer_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		crop_id UUID NOT NULL REFERENCES crops(id) ON DELETE CASCADE,
		application_date DATE NOT NULL,
		nutrient_type VARCHAR(10) NOT NULL,
		amount_kg_per_ha DECIMAL(8,3) NOT NULL,
		application_method VARCHAR(50),
		fertilizer_name VARCHAR(100),
		notes TEXT,
		recorded_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS yield_predictions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		field_id UUID NOT NULL REFERENCES fields(id) ON DELETE CASCADE,
		crop_id UUID NOT NULL REFERENCES crops(id) ON DELETE CASCADE,
		prediction_date DATE NOT NULL DEFAULT CURRENT_DATE,
		days_after_sowing INTEGER,
		current_stage VARCHAR(50),
		temp_celsius DECIMAL(5,2),
		humidity_percent DECIMAL(5,2),
		rainfall_mm DECIMAL(8,2),
		soil_moisture_percent DECIMAL(5,2),
		irrigation_total_mm DECIMAL(8,3),
		fertilizer_applied_kg DECIMAL(8,3),
		pest_disease_pressure VARCHAR(20) DEFAULT 'low',
		expected_yield_per_hectare DECIMAL(8,3),
		total_expected_yield DECIMAL(10,3),
		quality_grade VARCHAR(20),
		predicted_harvest_date DATE,
		confidence_score DECIMAL(5,4),
		model_version VARCHAR(20) DEFAULT '1.0',
		actual_yield DECIMAL(8,3),
		actual_harvest_date DATE,
		actual_quality VARCHAR(20),
		accuracy_score DECIMAL(5,4),
		status VARCHAR(20) DEFAULT 'pending' CHECK (status IN ('pending', 'confirmed', 'completed')),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS climate_damage_claims (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		field_id UUID REFERENCES fields(id) ON DELETE SET NULL,
		crop_id UUID REFERENCES crops(id) ON DELETE SET NULL,
		farmer_name VARCHAR(255) NOT NULL,
		farmer_email VARCHAR(255) NOT NULL,
		farmer_phone VARCHAR(20) NOT NULL,
		farm_location TEXT NOT NULL,
		farmer_address TEXT NOT NULL,
		incident_date DATE NOT NULL,
		damage_type VARCHAR(50) NOT NULL,
		crop_type VARCHAR(100) NOT NULL,
		affected_area_hectares DECIMAL(10,4) NOT NULL,
		estimated_loss_amount DECIMAL(12,2) NOT NULL,
		severity_level VARCHAR(20) NOT NULL CHECK (severity_level IN ('mild', 'moderate', 'severe', 'complete')),
		damage_description TEXT NOT NULL,
		weather_condition VARCHAR(100),
		damage_duration VARCHAR(50),
		selected_scheme_id VARCHAR(50),
		scheme_name VARCHAR(255),
		claim_amount DECIMAL(12,2),
		claim_status VARCHAR(20) DEFAULT 'submitted' CHECK (claim_status IN ('submitted', 'under_review', 'approved', 'rejected', 'completed')),
		claim_reference_number VARCHAR(50) UNIQUE,
		government_notes TEXT,
		approved_amount DECIMAL(12,2),
		approval_date DATE,
		payment_date DATE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS government_schemes (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		scheme_code VARCHAR(50) UNIQUE NOT NULL,
		scheme_name VARCHAR(255) NOT NULL,
		description TEXT,
		max_claim_amount DECIMAL(12,2),
		eligibility_criteria TEXT,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
	`CREATE INDEX IF NOT EXISTS idx_users_user_type ON users(user_type)`,
	`CREATE INDEX IF NOT EXISTS idx_fields_user_id ON fields(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fields_status ON fields(status)`,
	`CREATE INDEX IF NOT EXISTS idx_crops_user_id ON crops(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_crops_field_id ON crops(field_id)`,
	`CREATE INDEX IF NOT EXISTS idx_crops_status ON crops(crop_status)`,
	`CREATE INDEX IF NOT EXISTS idx_growth_stages_crop_id ON crop_growth_stages(crop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_irrigation_crop_id ON irrigation_records(crop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fertilizer_crop_id ON fertilizer_records(crop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_yield_pred_user_id ON yield_predictions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_yield_pred_crop_id ON yield_predictions(crop_id)`,
	`CREATE INDEX IF NOT EXISTS idx_claims_user_id ON climate_damage_claims(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_claims_status ON climate_damage_claims(claim_status)`,
	`CREATE INDEX IF NOT EXISTS idx_claims_reference ON climate_damage_claims(claim_reference_number)`,

	`CREATE OR REPLACE FUNCTION update_timestamp()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = CURRENT_TIMESTAMP;
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS users_update_timestamp ON users`,
	`CREATE TRIGGER users_update_timestamp
		BEFORE UPDATE ON users
		FOR EACH ROW EXECUTE FUNCTION update_timestamp()`,
	`DROP TRIGGER IF EXISTS fields_update_timestamp ON fields`,
	`CREATE TRIGGER fields_update_timestamp
		BEFORE UPDATE ON fields
		FOR EACH ROW EXECUTE FUNCTION update_timestamp()`,
	`DROP TRIGGER IF EXISTS crops_update_timestamp ON crops`,
	`CREATE TRIGGER crops_update_timestamp
		BEFORE UPDATE ON crops
		FOR EACH ROW EXECUTE FUNCTION update_timestamp()`,
	`DROP TRIGGER IF EXISTS yield_predictions_update_timestamp ON yield_predictions`,
	`CREATE TRIGGER yield_predictions_update_timestamp
		BEFORE UPDATE ON yield_predictions
		FOR EACH ROW EXECUTE FUNCTION update_timestamp()`,
	`DROP TRIGGER IF EXISTS climate_damage_claims_update_timestamp ON climate_damage_claims`,
	`CREATE TRIGGER climate_damage_claims_update_timestamp
		BEFORE UPDATE ON climate_damage_claims
		FOR EACH ROW EXECUTE FUNCTION update_timestamp()`,

	`INSERT INTO government_schemes (scheme_code, scheme_name, description, max_claim_amount, eligibility_criteria) VALUES
		('PMFBY', 'Pradhan Mantri Fasal Bima Yojana (PMFBY)', 'Comprehensive crop insurance for weather-related losses', 200000.00, 'All farmers growing notified crops'),
		('WBCIS', 'Weather Based Crop Insurance Scheme (WBCIS)', 'Insurance based on weather parameters', 150000.00, 'Farmers affected by adverse weather'),
		('NAIS', 'National Agricultural Insurance Scheme (NAIS)', 'Basic crop insurance for natural calamities', 100000.00, 'Small and marginal farmers'),
		('DISASTER_RELIEF', 'State Disaster Relief Fund', 'Emergency relief for climate disasters', 50000.00, 'Farmers in disaster-declared areas'),
		('KISAN_CREDIT', 'Kisan Credit Card Scheme', 'Credit support for crop recovery', 300000.00, 'KCC holders with valid insurance')
		ON CONFLICT (scheme_code) DO NOTHING`,
}

// ApplySchema creates all tables, indexes, triggers, and seed reference
// data. Safe to run on every startup.
func ApplySchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
