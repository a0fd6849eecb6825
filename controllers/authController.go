package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/ecobites/ecobites-api/initializers"
	"github.com/ecobites/ecobites-api/models"
	"github.com/ecobites/ecobites-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgEmailInUse            = "This email is already in use. Please use a different email."
	msgFailedToHashPassword  = "failed to hash password"
	msgUserNotFound          = "User not found"
	msgWrongCredentials      = "Wrong credentials"
	msgWrongOldPassword      = "Old password is incorrect"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserCreated           = "User created successfully"
	msgProfileUpdateFailed   = "An error occurred while updating the profile"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// generateJWT signs a 7-day token. Location claims mirror the stored user
// location: city/state when both are present, otherwise the coordinate pair.
func generateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(),
	}

	if len(user.Location) > 0 {
		var location models.UserLocation
		if err := json.Unmarshal(user.Location, &location); err == nil {
			if location.City != "" && location.State != "" {
				claims["city"] = location.City
				claims["state"] = location.State
			} else if location.Latitude != nil && location.Longitude != nil {
				claims["latitude"] = *location.Latitude
				claims["longitude"] = *location.Longitude
			}
		}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func checkUserExists(email string) (bool, error) {
	var existingUser models.User
	result := initializers.DB.Where("email = ?", email).Find(&existingUser)
	return result.RowsAffected > 0, result.Error
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// currentUserID reads the authenticated user's id from the claims placed in
// the context by the RequireAuth middleware.
func currentUserID(ctx *gin.Context) (uint, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}

// Signup handles user registration
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := checkUserExists(signUpData.Email)
	if err != nil {
		initializers.Log.WithError(err).Error("Database error during user check")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusConflict, msgEmailInUse)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		initializers.Log.WithError(err).Error("Password hashing error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	user := models.User{
		Username: signUpData.Username,
		Email:    signUpData.Email,
		Password: hashedPassword,
	}

	if signUpData.Location != nil {
		locationJSON, err := json.Marshal(signUpData.Location)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		user.Location = locationJSON
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		initializers.Log.WithError(result.Error).Error("User creation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": msgUserCreated})
}

// Signin handles user authentication
func Signin(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgWrongCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		initializers.Log.WithError(err).Error("JWT generation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString, "user": user})
}

// UpdateProfile updates the authenticated user's username, password, location
// or profile picture. The profile picture arrives as multipart form data and
// is stored on the image host.
func UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	oldPassword := ctx.PostForm("oldPassword")
	if err := comparePasswords(user.Password, oldPassword); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgWrongOldPassword)
		return
	}

	updates := map[string]any{}

	if username := ctx.PostForm("username"); username != "" {
		updates["username"] = username
	}

	if newPassword := ctx.PostForm("newPassword"); newPassword != "" {
		hashedPassword, err := hashPassword(newPassword)
		if err != nil {
			initializers.Log.WithError(err).Error("Password hashing error")
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}
		updates["password"] = hashedPassword
	}

	if location := ctx.PostForm("location"); location != "" {
		var parsed models.UserLocation
		if err := json.Unmarshal([]byte(location), &parsed); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		updates["location"] = []byte(location)
	}

	if file, err := ctx.FormFile("profilePicture"); err == nil {
		url, uploadErr := utils.UploadProfilePicture(ctx.Request.Context(), file)
		if uploadErr != nil {
			initializers.Log.WithError(uploadErr).Error("Profile picture upload failed")
			sendErrorResponse(ctx, http.StatusInternalServerError, msgProfileUpdateFailed)
			return
		}
		updates["profile_picture"] = url
	}

	if len(updates) > 0 {
		if result := initializers.DB.Model(&user).Updates(updates); result.Error != nil {
			initializers.Log.WithError(result.Error).Error("Profile update error")
			sendErrorResponse(ctx, http.StatusInternalServerError, msgProfileUpdateFailed)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "user": user})
}

// GetCurrentUser returns the authenticated user's record.
func GetCurrentUser(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}
