package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"genderdecoder/internal/models"
)

// jobAdColumns is the standard column list for job ad queries.
const jobAdColumns = `id, ad_text, masculine_word_count, feminine_word_count,
	masculine_coded_words, feminine_coded_words, coding, lexicon_version, created_at, updated_at`

func scanJobAd(row pgx.Row) (*models.JobAd, error) {
	var ad models.JobAd
	err := row.Scan(
		&ad.ID,
		&ad.Text,
		&ad.MasculineWordCount,
		&ad.FeminineWordCount,
		&ad.MasculineCodedWords,
		&ad.FeminineCodedWords,
		&ad.Coding,
		&ad.LexiconVersion,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func scanJobAds(rows pgx.Rows) ([]models.JobAd, error) {
	defer rows.Close()

	var ads []models.JobAd
	for rows.Next() {
		ad, err := scanJobAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *ad)
	}
	return ads, rows.Err()
}

// CreateJobAd stores an analysed ad and fills in its ID and timestamps.
func (d *DB) CreateJobAd(ctx context.Context, ad *models.JobAd) error {
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO job_ads (ad_text, masculine_word_count, feminine_word_count,
			masculine_coded_words, feminine_coded_words, coding, lexicon_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, ad.Text, ad.MasculineWordCount, ad.FeminineWordCount,
		ad.MasculineCodedWords, ad.FeminineCodedWords, ad.Coding, ad.LexiconVersion,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert job ad: %w", err)
	}
	return nil
}

// GetJobAdByID retrieves an ad by its ID.
func (d *DB) GetJobAdByID(ctx context.Context, id uuid.UUID) (*models.JobAd, error) {
	row := d.Pool.QueryRow(ctx, `SELECT `+jobAdColumns+` FROM job_ads WHERE id = $1`, id)
	return scanJobAd(row)
}

// ListRecentJobAds returns the newest ads first.
func (d *DB) ListRecentJobAds(ctx context.Context, limit int) ([]models.JobAd, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+jobAdColumns+` FROM job_ads
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return scanJobAds(rows)
}

// ListStaleJobAds returns ads scored with a lexicon other than version,
// oldest first.
func (d *DB) ListStaleJobAds(ctx context.Context, version string, limit int) ([]models.JobAd, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT `+jobAdColumns+` FROM job_ads
		WHERE lexicon_version <> $1
		ORDER BY created_at
		LIMIT $2
	`, version, limit)
	if err != nil {
		return nil, err
	}
	return scanJobAds(rows)
}

// UpdateJobAdCoding rewrites the derived fields of an ad. The ad text is
// never changed.
func (d *DB) UpdateJobAdCoding(ctx context.Context, ad *models.JobAd) error {
	tag, err := d.Pool.Exec(ctx, `
		UPDATE job_ads
		SET masculine_word_count = $2, feminine_word_count = $3,
			masculine_coded_words = $4, feminine_coded_words = $5,
			coding = $6, lexicon_version = $7, updated_at = NOW()
		WHERE id = $1
	`, ad.ID, ad.MasculineWordCount, ad.FeminineWordCount,
		ad.MasculineCodedWords, ad.FeminineCodedWords, ad.Coding, ad.LexiconVersion)
	if err != nil {
		return fmt.Errorf("update job ad %s: %w", ad.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobAdNotFound
	}
	return nil
}

// CountJobAdsByCoding returns how many stored ads have each coding.
func (d *DB) CountJobAdsByCoding(ctx context.Context) ([]models.CodingCount, error) {
	rows, err := d.Pool.Query(ctx, `SELECT coding, COUNT(*) FROM job_ads GROUP BY coding`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.CodingCount
	for rows.Next() {
		var c models.CodingCount
		if err := rows.Scan(&c.Coding, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
