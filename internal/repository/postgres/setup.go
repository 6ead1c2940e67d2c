package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// dropOrder lists the tables dependents-first so the drops never hit a
// foreign-key restriction.
var dropOrder = []string{
	"event_and_location",
	"location",
	"attendance",
	"participant",
	"event_photo",
	"feedback",
	"sponsor_support",
	"sponsor",
	"volunteer",
	"photographer",
	"speaker",
	"team_member",
	"event",
	"organizer",
}

var createStatements = []string{
	`CREATE TABLE organizer (
		organizer_id INTEGER PRIMARY KEY,
		organizer_name VARCHAR(255),
		organizer_email VARCHAR(255) NOT NULL,
		organizer_phone_no CHAR(10),
		UNIQUE (organizer_name, organizer_phone_no)
	)`,
	`CREATE TABLE event (
		event_id INTEGER PRIMARY KEY,
		organizer_id INTEGER NOT NULL REFERENCES organizer (organizer_id),
		event_date DATE,
		expense NUMERIC(12,2),
		event_time CHAR(5),
		event_name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE team_member (
		member_name VARCHAR(255),
		member_phone_no CHAR(10),
		organizer_id INTEGER REFERENCES organizer (organizer_id),
		staff_email VARCHAR(255),
		pay_rate NUMERIC(8,2),
		PRIMARY KEY (member_name, member_phone_no)
	)`,
	`CREATE TABLE speaker (
		member_name VARCHAR(255),
		member_phone_no CHAR(10),
		experience_level VARCHAR(255),
		PRIMARY KEY (member_name, member_phone_no),
		FOREIGN KEY (member_name, member_phone_no) REFERENCES team_member (member_name, member_phone_no)
	)`,
	`CREATE TABLE photographer (
		member_name VARCHAR(255),
		member_phone_no CHAR(10),
		equipment VARCHAR(255),
		PRIMARY KEY (member_name, member_phone_no),
		FOREIGN KEY (member_name, member_phone_no) REFERENCES team_member (member_name, member_phone_no)
	)`,
	`CREATE TABLE volunteer (
		member_name VARCHAR(255),
		member_phone_no CHAR(10),
		skill VARCHAR(255),
		PRIMARY KEY (member_name, member_phone_no),
		FOREIGN KEY (member_name, member_phone_no) REFERENCES team_member (member_name, member_phone_no)
	)`,
	`CREATE TABLE sponsor (
		sponsor_name VARCHAR(255),
		sponsor_phone_no CHAR(10),
		sponsor_email VARCHAR(255),
		PRIMARY KEY (sponsor_name, sponsor_phone_no)
	)`,
	`CREATE TABLE sponsor_support (
		event_id INTEGER REFERENCES event (event_id),
		sponsor_name VARCHAR(255),
		sponsor_phone_no CHAR(10),
		sponsorship_type VARCHAR(255),
		estimated_value NUMERIC(12,2),
		PRIMARY KEY (event_id, sponsor_name, sponsorship_type),
		FOREIGN KEY (sponsor_name, sponsor_phone_no) REFERENCES sponsor (sponsor_name, sponsor_phone_no)
	)`,
	`CREATE TABLE feedback (
		feedback_id INTEGER PRIMARY KEY,
		event_id INTEGER REFERENCES event (event_id),
		rating INTEGER,
		feedback VARCHAR(255)
	)`,
	`CREATE TABLE event_photo (
		photo_id INTEGER PRIMARY KEY,
		event_id INTEGER REFERENCES event (event_id),
		description VARCHAR(255)
	)`,
	`CREATE TABLE participant (
		participant_id INTEGER PRIMARY KEY,
		participant_name VARCHAR(255),
		participant_email VARCHAR(255),
		UNIQUE (participant_name, participant_email)
	)`,
	`CREATE TABLE attendance (
		event_id INTEGER REFERENCES event (event_id),
		participant_id INTEGER REFERENCES participant (participant_id),
		PRIMARY KEY (event_id, participant_id)
	)`,
	`CREATE TABLE location (
		address VARCHAR(255) PRIMARY KEY,
		capacity INTEGER
	)`,
	`CREATE TABLE event_and_location (
		event_id INTEGER PRIMARY KEY REFERENCES event (event_id),
		address VARCHAR(255) REFERENCES location (address),
		event_date DATE,
		expense NUMERIC(12,2),
		event_time CHAR(5),
		event_name VARCHAR(255) NOT NULL
	)`,
}

var seedStatements = []string{
	`INSERT INTO organizer VALUES (1, 'UBC Science', 'contact@ubcscience.ca', '6041234567')`,
	`INSERT INTO organizer VALUES (2, 'UBC Tech Club', 'techclub@ubc.ca', '6041234568')`,
	`INSERT INTO organizer VALUES (3, 'IKB', 'ikb@ubc.ca', '6041234569')`,

	`INSERT INTO event VALUES (101, 1, DATE '2023-12-15', 5000, '18:00', 'Tech Expo 2023')`,
	`INSERT INTO event VALUES (102, 1, DATE '2023-10-07', 3000, '09:00', 'DevFest')`,
	`INSERT INTO event VALUES (103, 2, DATE '2023-11-22', 4000, '12:00', 'Literature Festival')`,
	`INSERT INTO event VALUES (104, 2, DATE '2023-09-05', 2000, '10:00', 'Robotics Workshop')`,
	`INSERT INTO event VALUES (105, 3, DATE '2023-08-20', 3500, '14:00', 'Art History Exhibition')`,
	`INSERT INTO event VALUES (106, 3, DATE '2023-07-11', 2500, '16:00', 'Historical Archives Tour')`,

	`INSERT INTO team_member VALUES ('John Doe', '7781234567', 1, 'johndoe@ubc.ca', 30)`,
	`INSERT INTO team_member VALUES ('Emily Smith', '7781234568', 1, 'emilysmith@ubc.ca', 35)`,
	`INSERT INTO team_member VALUES ('Alex Johnson', '7781234569', 2, 'alexjohnson@ubc.ca', 40)`,

	`INSERT INTO speaker VALUES ('John Doe', '7781234567', 'Expert')`,
	`INSERT INTO photographer VALUES ('Alex Johnson', '7781234569', 'Sony A7 III')`,
	`INSERT INTO volunteer VALUES ('Emily Smith', '7781234568', 'First Aid')`,

	`INSERT INTO sponsor VALUES ('Google', '8001234567', 'sponsor@google.com')`,
	`INSERT INTO sponsor VALUES ('Amazon', '8001234568', 'sponsor@amazon.com')`,
	`INSERT INTO sponsor VALUES ('Microsoft', '8001234569', 'sponsor@microsoft.com')`,
	`INSERT INTO sponsor VALUES ('Adobe', '8001234570', 'sponsor@adobe.com')`,
	`INSERT INTO sponsor VALUES ('Intel', '8001234571', 'sponsor@intel.com')`,
	`INSERT INTO sponsor VALUES ('Tesla', '8001234572', 'sponsor@tesla.com')`,

	`INSERT INTO sponsor_support VALUES (101, 'Google', '8001234567', 'Financial', 10000)`,
	`INSERT INTO sponsor_support VALUES (102, 'Google', '8001234567', 'In-Kind', 12000)`,
	`INSERT INTO sponsor_support VALUES (103, 'Google', '8001234567', 'Media', 15000)`,
	`INSERT INTO sponsor_support VALUES (104, 'Google', '8001234567', 'Technical', 11000)`,
	`INSERT INTO sponsor_support VALUES (105, 'Amazon', '8001234568', 'Financial', 16000)`,
	`INSERT INTO sponsor_support VALUES (102, 'Microsoft', '8001234569', 'In-Kind', 20000)`,
	`INSERT INTO sponsor_support VALUES (102, 'Adobe', '8001234570', 'Media', 14000)`,
	`INSERT INTO sponsor_support VALUES (101, 'Intel', '8001234571', 'Technical', 17000)`,

	`INSERT INTO feedback VALUES (1004, 104, 5, 'Outstanding workshop with hands-on experience.')`,
	`INSERT INTO feedback VALUES (1005, 105, 4, 'Very informative and well-presented exhibition.')`,
	`INSERT INTO feedback VALUES (1006, 106, 5, 'Incredible tour, rich in history and detail.')`,
	`INSERT INTO feedback VALUES (1007, 101, 4, 'Impressive tech displays and networking opportunities.')`,
	`INSERT INTO feedback VALUES (1008, 102, 4, 'Well-organized event with great speakers.')`,
	`INSERT INTO feedback VALUES (1009, 103, 2, 'Interesting topics, but the sessions were too long.')`,
	`INSERT INTO feedback VALUES (1010, 104, 3, 'Robotics concepts were great, but needed more practical examples.')`,
	`INSERT INTO feedback VALUES (1011, 105, 5, 'Fantastic curation of art pieces and knowledgeable guides.')`,
	`INSERT INTO feedback VALUES (1012, 106, 3, 'Enjoyable tour, but it felt a bit rushed.')`,

	`INSERT INTO event_photo VALUES (2001, 101, 'Opening Ceremony Photo')`,

	`INSERT INTO participant VALUES (501, 'Howard', 'howards@ubc.ca')`,
	`INSERT INTO participant VALUES (502, 'Jerry', 'jerryc@ubc.ca')`,

	`INSERT INTO attendance VALUES (101, 501)`,
	`INSERT INTO attendance VALUES (101, 502)`,

	`INSERT INTO location VALUES ('UBC Robson Square, 800 Robson St', 300)`,
	`INSERT INTO location VALUES ('UBC Life Sciences Centre, 2350 Health Sciences Mall', 500)`,
	`INSERT INTO location VALUES ('UBC Nest, 6133 University Blvd', 200)`,

	`INSERT INTO event_and_location VALUES (101, 'UBC Robson Square, 800 Robson St', DATE '2023-12-15', 5000, '18:00', 'Tech Expo 2023')`,
	`INSERT INTO event_and_location VALUES (102, 'UBC Life Sciences Centre, 2350 Health Sciences Mall', DATE '2023-10-07', 3000, '09:00', 'DevFest')`,
	`INSERT INTO event_and_location VALUES (103, 'UBC Nest, 6133 University Blvd', DATE '2023-11-22', 4000, '12:00', 'Literature Festival')`,
	`INSERT INTO event_and_location VALUES (104, 'UBC Robson Square, 800 Robson St', DATE '2023-09-05', 2000, '10:00', 'Robotics Workshop')`,
}

// SetupDatabase drops the fourteen application tables, recreates them, and
// loads the sample data set. Everything runs in one transaction so a failed
// setup leaves the previous schema untouched.
func SetupDatabase(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range dropOrder {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	for _, stmt := range createStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	for _, stmt := range seedStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return tx.Commit()
}
