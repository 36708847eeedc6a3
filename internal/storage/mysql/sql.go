package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, type, stars, price, image, location, description, amenities, rating, reviews, featured)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  type        = VALUES(type),
  stars       = VALUES(stars),
  price       = VALUES(price),
  image       = VALUES(image),
  location    = VALUES(location),
  description = VALUES(description),
  amenities   = VALUES(amenities),
  rating      = VALUES(rating),
  reviews     = VALUES(reviews),
  featured    = VALUES(featured),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertActivitySQL = `
INSERT INTO activities
  (id, name, category, price, image, duration, description, includes, difficulty, featured)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  category    = VALUES(category),
  price       = VALUES(price),
  image       = VALUES(image),
  duration    = VALUES(duration),
  description = VALUES(description),
  includes    = VALUES(includes),
  difficulty  = VALUES(difficulty),
  featured    = VALUES(featured),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertPackageSQL = `
INSERT INTO packages
  (id, name, type, price, image, duration, description, includes, persons, featured, badge)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name        = VALUES(name),
  type        = VALUES(type),
  price       = VALUES(price),
  image       = VALUES(image),
  duration    = VALUES(duration),
  description = VALUES(description),
  includes    = VALUES(includes),
  persons     = VALUES(persons),
  featured    = VALUES(featured),
  badge       = VALUES(badge),
  updated_at  = CURRENT_TIMESTAMP
`

const upsertTestimonialSQL = `
INSERT INTO testimonials
  (id, name, country, avatar, rating, comment, date)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  country    = VALUES(country),
  avatar     = VALUES(avatar),
  rating     = VALUES(rating),
  comment    = VALUES(comment),
  date       = VALUES(date),
  updated_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Collections are read in id order, which is the catalog's display order.
const listHotelsSQL = `
SELECT id, name, type, stars, price, image, location, description, amenities, rating, reviews, featured
FROM hotels
ORDER BY id
`

const listActivitiesSQL = `
SELECT id, name, category, price, image, duration, description, includes, difficulty, featured
FROM activities
ORDER BY id
`

const listPackagesSQL = `
SELECT id, name, type, price, image, duration, description, includes, persons, featured, badge
FROM packages
ORDER BY id
`

const listTestimonialsSQL = `
SELECT id, name, country, avatar, rating, comment, date
FROM testimonials
ORDER BY id
`
